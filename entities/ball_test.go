package entities

import (
	"math"
	"testing"

	"github.com/marklanglo/pong/audio"
	"github.com/marklanglo/pong/constants"
	"github.com/marklanglo/pong/core"
	"github.com/marklanglo/pong/vmath"
)

// stubCollider reports a fixed hit result and records sampled positions
type stubCollider struct {
	hit       bool
	direction int
	samples   []vmath.Vec2
}

func (s *stubCollider) Collide(pos, vel vmath.Vec2, radius float64) bool {
	s.samples = append(s.samples, pos)
	return s.hit
}

func (s *stubCollider) ReboundDirection(ballY float64) int {
	return s.direction
}

var center = vmath.V2(constants.FieldWidth/2, constants.FieldHeight/2)

func newTestBall(left, right Collider) (*Ball, *audio.Recorder) {
	rec := &audio.Recorder{}
	if left == nil {
		left = &stubCollider{}
	}
	if right == nil {
		right = &stubCollider{}
	}
	return NewBall(testField(), [2]Collider{left, right}, rec, center), rec
}

// inPlay puts the ball mid-rally at pos with velocity vel
func inPlay(b *Ball, pos, vel vmath.Vec2) {
	b.pos = pos
	b.vel = vel
	b.inProgress = true
}

// TestBallInitialState verifies a fresh ball waits at the origin
func TestBallInitialState(t *testing.T) {
	b, _ := newTestBall(nil, nil)

	if b.Position() != center || b.IsMoving() || b.InProgress() {
		t.Errorf("Unexpected initial state: pos %v moving %v", b.Position(), b.IsMoving())
	}
	if b.ResetTimer() != constants.BallFirstServeDelay {
		t.Errorf("ResetTimer = %d", b.ResetTimer())
	}
	if b.Color() != core.RGBGreen || !b.SoundOn() {
		t.Error("Expected green ball with sound on")
	}
}

// TestBallFirstServe verifies the ball serves once the opening countdown elapses
func TestBallFirstServe(t *testing.T) {
	b, _ := newTestBall(nil, nil)

	for i := 0; i < constants.BallFirstServeDelay; i++ {
		b.Update()
	}
	if b.IsMoving() || b.ResetTimer() != 0 {
		t.Fatalf("Served early: moving %v timer %d", b.IsMoving(), b.ResetTimer())
	}

	b.Update()
	if !b.IsMoving() || !b.InProgress() {
		t.Fatal("Expected serve after countdown")
	}
	if b.Velocity() != vmath.V2(-1.5, -0.5) {
		t.Errorf("First serve velocity = %v, want (-1.5, -0.5)", b.Velocity())
	}
}

// TestBallStartDirection verifies serve direction follows the conceding side
func TestBallStartDirection(t *testing.T) {
	b, _ := newTestBall(nil, nil)
	want := math.Sqrt(1.5*1.5 + 0.5*0.5)

	b.scoredLeft = true
	b.Start()
	if b.Velocity() != vmath.V2(1.5, 0.5) {
		t.Errorf("scoredLeft serve = %v", b.Velocity())
	}
	if math.Abs(b.Velocity().Mag()-want) > 1e-12 {
		t.Errorf("Serve speed = %v, want %v", b.Velocity().Mag(), want)
	}

	b.scoredLeft = false
	b.Start()
	if b.Velocity() != vmath.V2(-1.5, -0.5) {
		t.Errorf("right serve = %v", b.Velocity())
	}

	b.Stop()
	if b.IsMoving() {
		t.Error("Stop should zero velocity")
	}
}

// TestBallWallBounce verifies leaving the top or bottom flips only the y component
func TestBallWallBounce(t *testing.T) {
	tests := []struct {
		name string
		pos  vmath.Vec2
		vel  vmath.Vec2
		want vmath.Vec2
	}{
		{"Top", vmath.V2(400, 0.5), vmath.V2(3, -1), vmath.V2(3, 1)},
		{"Bottom", vmath.V2(400, 499.5), vmath.V2(-3, 1), vmath.V2(-3, -1)},
		{"HeadingBackIn", vmath.V2(400, -2), vmath.V2(3, 1), vmath.V2(3, 1)},
		{"Open", vmath.V2(400, 250), vmath.V2(3, 1), vmath.V2(3, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, rec := newTestBall(nil, nil)
			inPlay(b, tc.pos, tc.vel)
			b.Update()

			if b.Velocity() != tc.want {
				t.Errorf("Velocity = %v, want %v", b.Velocity(), tc.want)
			}
			if len(rec.Calls) != 0 {
				t.Errorf("Wall bounce should be silent, got %+v", rec.Calls)
			}
		})
	}
}

// TestBallGoal verifies goal attribution and that the reset precedes paddle checks
func TestBallGoal(t *testing.T) {
	tests := []struct {
		name       string
		pos        vmath.Vec2
		vel        vmath.Vec2
		scoredLeft bool
	}{
		{"RightEdge", vmath.V2(768, 250), vmath.V2(3, 0), false},
		{"LeftEdge", vmath.V2(32, 250), vmath.V2(-3, 0), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			left := &stubCollider{}
			right := &stubCollider{}
			b, _ := newTestBall(left, right)
			inPlay(b, tc.pos, tc.vel)
			b.Update()

			if b.Position() != center || b.IsMoving() || b.InProgress() {
				t.Errorf("Not reset: pos %v vel %v", b.Position(), b.Velocity())
			}
			if b.ResetTimer() != constants.BallServeDelay-1 {
				t.Errorf("ResetTimer = %d, want %d", b.ResetTimer(), constants.BallServeDelay-1)
			}
			for _, c := range []*stubCollider{left, right} {
				for _, p := range c.samples {
					if p != center {
						t.Errorf("Paddle sampled at %v before reset", p)
					}
				}
			}

			pt := b.TakePoint()
			if pt.Points != 1 || pt.ScoredLeft != tc.scoredLeft {
				t.Errorf("TakePoint = %+v, want (1, %v)", pt, tc.scoredLeft)
			}
			again := b.TakePoint()
			if again.Points != 0 || again.ScoredLeft != tc.scoredLeft {
				t.Errorf("Second TakePoint = %+v, want (0, %v)", again, tc.scoredLeft)
			}
		})
	}
}

// TestBallServeAfterGoal verifies the round trip from goal to next serve
func TestBallServeAfterGoal(t *testing.T) {
	b, _ := newTestBall(nil, nil)
	inPlay(b, vmath.V2(32, 250), vmath.V2(-3, 0))
	b.Update()

	for b.ResetTimer() > 0 {
		if b.IsMoving() {
			t.Fatal("Moving during serve delay")
		}
		b.Update()
	}
	b.Update()

	if b.Velocity() != vmath.V2(1.5, 0.5) {
		t.Errorf("Serve toward right after left goal = %v", b.Velocity())
	}
}

// TestBallPaddleRebound verifies angle change, cooldown, sound, ramp and heat
func TestBallPaddleRebound(t *testing.T) {
	left := &stubCollider{hit: true, direction: 3}
	b, rec := newTestBall(left, nil)
	inPlay(b, vmath.V2(103, 250), vmath.V2(-3, 0))

	b.Update()

	if v := b.Velocity(); math.Abs(v.X-3.3) > 1e-9 || math.Abs(v.Y) > 1e-9 {
		t.Errorf("Velocity = %v, want (3.3, 0)", v)
	}
	if b.ReboundCooldown() != constants.BallReboundCooldown-1 {
		t.Errorf("Cooldown = %d", b.ReboundCooldown())
	}
	if rec.Count(audio.OpSound) != 1 {
		t.Errorf("Expected one bounce sound, got %d", rec.Count(audio.OpSound))
	}
	if b.Color() != (core.RGB{R: 15, G: 240, B: 0}) {
		t.Errorf("Color = %+v", b.Color())
	}

	// Still touching: cooldown blocks a second rebound
	b.Update()
	if v := b.Velocity(); math.Abs(v.X-3.3) > 1e-9 {
		t.Errorf("Rebounded during cooldown: %v", v)
	}
	if rec.Count(audio.OpSound) != 1 {
		t.Error("Sound replayed during cooldown")
	}
}

// TestBallPaddleSideGate verifies each paddle only deflects on its own half
func TestBallPaddleSideGate(t *testing.T) {
	left := &stubCollider{hit: true, direction: 3}
	right := &stubCollider{hit: true, direction: 3}

	b, rec := newTestBall(left, nil)
	inPlay(b, vmath.V2(603, 250), vmath.V2(3, 0))
	b.Update()
	if b.Velocity() != vmath.V2(3, 0) || rec.Count(audio.OpSound) != 0 {
		t.Errorf("Left paddle deflected on right half: %v", b.Velocity())
	}

	b, _ = newTestBall(nil, right)
	inPlay(b, vmath.V2(197, 250), vmath.V2(-3, 0))
	b.Update()
	if b.Velocity() != vmath.V2(-3, 0) {
		t.Errorf("Right paddle deflected on left half: %v", b.Velocity())
	}
}

// TestBallReboundBuckets verifies every bucket redirects back across the field at its angle
func TestBallReboundBuckets(t *testing.T) {
	for dir, angle := range constants.ReboundAngles {
		right := &stubCollider{hit: true, direction: dir}
		b, _ := newTestBall(nil, right)
		inPlay(b, vmath.V2(596, 250), vmath.V2(4, 0))
		b.Update()

		v := b.Velocity()
		if v.X >= 0 {
			t.Errorf("Bucket %d: ball not sent back left, v = %v", dir, v)
		}
		got := math.Atan2(v.Y, -v.X) * 180 / math.Pi
		if math.Abs(got-angle) > 1e-9 {
			t.Errorf("Bucket %d: angle %v, want %v", dir, got, angle)
		}
		if math.Abs(v.Mag()-4.4) > 1e-9 {
			t.Errorf("Bucket %d: speed %v, want 4.4", dir, v.Mag())
		}
	}
}

// TestBallSpeedCap verifies the ramp never exceeds the cap
func TestBallSpeedCap(t *testing.T) {
	tests := []struct {
		name      string
		speed     float64
		wantSpeed float64
		heated    bool
	}{
		{"RampBelowCap", 5, 5.5, true},
		{"ClampAtCap", 9.5, 10, true},
		{"AtCapNoRamp", 10, 10, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			left := &stubCollider{hit: true, direction: 3}
			b, _ := newTestBall(left, nil)
			inPlay(b, vmath.V2(100+tc.speed, 250), vmath.V2(-tc.speed, 0))
			b.Update()

			if got := b.Velocity().Mag(); math.Abs(got-tc.wantSpeed) > 1e-9 {
				t.Errorf("Speed = %v, want %v", got, tc.wantSpeed)
			}
			if heated := b.Color() != core.RGBGreen; heated != tc.heated {
				t.Errorf("Heated = %v, want %v", heated, tc.heated)
			}
		})
	}
}

// TestBallRallyNeverExceedsCap runs a long rally between two real paddles
func TestBallRallyNeverExceedsCap(t *testing.T) {
	field := testField()
	left := NewPaddle(field, constants.PaddleLeftX)
	right := NewPaddle(field, constants.FieldWidth-constants.PaddleRightInset)
	b := NewBall(field, [2]Collider{left, right}, nil, center)
	b.resetTimer = 0

	capSq := b.MaxSpeed() * b.MaxSpeed()
	for i := 0; i < 50000; i++ {
		// Keep both paddles on the ball so the rally continues
		left.SetY(b.Position().Y - 60)
		right.SetY(b.Position().Y - 60)
		b.Update()
		b.TakePoint()
		if b.Velocity().MagSq() > capSq*(1+1e-9) {
			t.Fatalf("Tick %d: speed %v above cap", i, b.Velocity().Mag())
		}
	}
}

// TestBallToggleSfx verifies muted bounces make no sound
func TestBallToggleSfx(t *testing.T) {
	left := &stubCollider{hit: true, direction: 0}
	b, rec := newTestBall(left, nil)
	b.ToggleSfx()
	inPlay(b, vmath.V2(103, 250), vmath.V2(-3, 0))
	b.Update()

	if rec.Count(audio.OpSound) != 0 {
		t.Error("Muted ball played a sound")
	}
	b.ToggleSfx()
	if !b.SoundOn() {
		t.Error("Expected sound back on")
	}
}

// TestBallGameOver verifies a finished match freezes the ball
func TestBallGameOver(t *testing.T) {
	b, _ := newTestBall(nil, nil)
	b.resetTimer = 0
	b.SetGameOver()

	for i := 0; i < 100; i++ {
		b.Update()
	}
	if b.IsMoving() || b.Position() != center {
		t.Errorf("Game over ball moved: %v %v", b.Position(), b.Velocity())
	}
	if b.Color() != core.RGBBlack || !b.GameOver() {
		t.Error("Expected black frozen ball")
	}
}

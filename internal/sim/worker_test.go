package sim_test

import (
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gravbox/internal/dynamo"
	"github.com/san-kum/gravbox/internal/physics"
	"github.com/san-kum/gravbox/internal/sim"
)

const (
	width  = 1920
	height = 980
)

func spawn(x, y float64) physics.Particle {
	return physics.NewBuilder(width, height).
		SetPos(x, y).
		SetVY(250).
		TrackPosition(true).
		Build()
}

func at(x, y float64) physics.Particle {
	return physics.NewBuilder(width, height).SetPos(x, y).Build()
}

type frameLog struct {
	mu     sync.Mutex
	frames []sim.Frame
}

func (l *frameLog) OnFrame(f sim.Frame) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.frames = append(l.frames, f)
}

func (l *frameLog) Frames() []sim.Frame {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]sim.Frame(nil), l.frames...)
}

var _ = Describe("Step", func() {
	center := sim.DefaultCenter

	It("removes a particle that starts inside the center", func() {
		scene := sim.Scene{at(965, 440)}

		scene, absorbed := sim.Step(scene, center)

		Expect(scene).To(BeEmpty())
		Expect(absorbed).To(Equal(1))
	})

	It("keeps the order of survivors", func() {
		scene := sim.Scene{at(100, 100), at(962, 441), at(1800, 900)}

		scene, absorbed := sim.Step(scene, center)

		Expect(absorbed).To(Equal(1))
		Expect(scene).To(HaveLen(2))
		x0, _ := scene[0].Pos()
		x1, _ := scene[1].Pos()
		Expect(x0).To(BeNumerically("<", 200))
		Expect(x1).To(BeNumerically(">", 1700))
	})

	It("eventually absorbs a particle falling into the center", func() {
		scene := sim.Scene{at(center.X+40, center.Y)}

		frames := 0
		for len(scene) > 0 && frames < 200 {
			scene, _ = sim.Step(scene, center)
			frames++
		}

		Expect(scene).To(BeEmpty())
		Expect(frames).To(BeNumerically(">", 1))
	})

	It("records one trail point per frame", func() {
		scene := sim.Scene{spawn(100, 100)}

		for i := 0; i < 3; i++ {
			scene, _ = sim.Step(scene, center)
		}

		Expect(scene[0].Trail().Len()).To(Equal(3))
	})

	It("applies gravity on every substep", func() {
		scene := sim.Scene{at(1460, 440)}

		scene, _ = sim.Step(scene, center)

		vx, vy := scene[0].Vel()
		// 16 substeps of a = G / (0.5^2) / 14 toward -x.
		expected := -physics.GravityStrength / 0.25 / physics.DefaultSize * physics.TimeStep * sim.Substeps
		Expect(vx).To(BeNumerically("~", expected, 1e-3))
		Expect(vy).To(BeNumerically("~", 0, 1e-9))
	})
})

var _ = Describe("Worker", func() {
	var (
		worker *sim.Worker
		log    *frameLog
	)

	BeforeEach(func() {
		worker = sim.NewWorker(sim.DefaultCenter)
		log = &frameLog{}
		worker.AddObserver(log)
	})

	It("returns a paused scene unchanged", func() {
		scene := sim.Scene{spawn(100, 100), spawn(1500, 800), at(961, 440)}
		before := scene.Clone()

		out := worker.Process(sim.Request{Scene: scene, Paused: true})

		Expect(out).To(Equal(before))
		Expect(log.Frames()).To(HaveLen(1))
		Expect(log.Frames()[0].Paused).To(BeTrue())
		Expect(log.Frames()[0].Population).To(Equal(3))
	})

	It("reports absorbed particles to observers", func() {
		worker.Process(sim.Request{Scene: sim.Scene{at(961, 440), spawn(100, 100)}})

		frames := log.Frames()
		Expect(frames).To(HaveLen(1))
		Expect(frames[0].Absorbed).To(Equal(1))
		Expect(frames[0].Population).To(Equal(1))
		Expect(frames[0].Energy).To(BeNumerically(">", 0))
	})

	Describe("pipeline", func() {
		var p *sim.Pipeline

		BeforeEach(func() {
			p = sim.Start(worker)
		})

		AfterEach(func() {
			defer func() { _ = recover() }()
			close(p.Requests)
		})

		It("steps a clicked particle toward the center in one round trip", func() {
			p.Requests <- sim.Request{Scene: sim.Scene{spawn(100, 100)}}

			var scene sim.Scene
			Eventually(p.Results).Should(Receive(&scene))
			Expect(scene).To(HaveLen(1))

			x, y := scene[0].Pos()
			vx, vy := scene[0].Vel()
			Expect(vx).To(BeNumerically(">", 0))
			Expect(vy).To(BeNumerically(">", 250))
			Expect(x).To(BeNumerically(">", 100))
			Expect(y).To(BeNumerically("~", 104, 0.01))
			Expect(scene[0].DrawPos()).To(Equal(dynamo.NewPoint(100, 104)))
			Expect(scene[0].Trail().Len()).To(Equal(1))
		})

		It("returns to waiting after each frame", func() {
			p.Requests <- sim.Request{Scene: sim.NewScene()}
			Eventually(p.Results).Should(Receive())
			Eventually(worker.State).Should(Equal(sim.WaitingForScene))
		})

		It("stops when the request channel closes", func() {
			close(p.Requests)

			var err error
			Eventually(p.Done).Should(Receive(&err))
			Expect(err).To(MatchError(dynamo.ErrChannelClosed))
			Eventually(p.Results).Should(BeClosed())
		})
	})
})

// Package backdrop is a frame-driven animation driver for decorative 3D
// page backdrops, rendered with [Ebitengine].
//
// A backdrop has three moving parts. A [Sampler] records the latest
// pointer position (in normalized device coordinates) and page scroll
// offset. An [Updater] runs once per tick: it takes one snapshot of the
// sampler and applies each tracked [Object]'s behaviors ([Spin], [Follow],
// [Breathe], [ScrollFade]) to its [Transform], then moves the [Camera] and
// ages the [EffectPool]. The pool holds short-lived rings spawned by clicks
// cast onto the ground plane.
//
// # Quick start
//
//	cfg, err := backdrop.LoadConfigFile("backdrop.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	scene, err := backdrop.Mount(backdrop.FixedContainer{W: cfg.Width, H: cfg.Height}, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	backdrop.Run(scene, backdrop.RunConfig{Title: cfg.Title, Width: cfg.Width, Height: cfg.Height})
//
// Mounting with a nil [Container] yields a disabled scene that ignores
// every call, so pages without a backdrop need no special casing.
//
// # Tick-rate dependence
//
// Spin steps are added once per tick, so on a 120 Hz display objects spin
// twice as fast as on 60 Hz. Set Config.RealTime to scale steps by elapsed
// time instead.
//
// # Testing one tick
//
// [Updater.Tick] takes the elapsed time explicitly and never touches the
// GPU, so a single frame can be driven from a test:
//
//	var s backdrop.Sampler
//	u := backdrop.NewUpdater(&s, nil, nil, nil)
//	u.Track(obj)
//	s.RecordPointer(400, 300, 800, 600)
//	u.Tick(16 * time.Millisecond)
//
// [Ebitengine]: https://ebitengine.org
package backdrop

// Package recording provides a render.Target that records drawing
// operations instead of rasterizing them.
//
// Commands are typed structs, not a binary stream, so tests and tools can
// inspect exactly what a Drawable issued and in which order. A Recording can
// be replayed to any other render.Target.
//
// # Example
//
//	rec := recording.NewRecorder(800, 600)
//	robot.Draw(rec, render.Identity())
//	r := rec.FinishRecording()
//
//	// Replay to a rasterizing surface
//	r.Playback(pngSurface)
//
// Importing this package registers the "record" backend surface, whose
// output is one text line per command.
package recording

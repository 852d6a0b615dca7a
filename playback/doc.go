// Package playback delivers solver output to external renderers.
//
// The core engine returns an ordered sequence of boards; rendering them
// is explicitly somebody else's job. This package is the seam: a
// WebSocket hub fans solution frames out to every client watching a
// session, and a small REST API accepts solve/scramble requests and
// (optionally) schedules a timed frame stream for a session, one frame
// per interval — the playback clock the renderer drives its animation
// from.
//
// Surfaces:
//
//	POST /api/solve     — solve a board, return frames, optionally stream
//	POST /api/scramble  — produce a solvable scramble
//	GET  /api/health    — liveness probe
//	GET  /ws/{session}  — WebSocket feed of frames for one session
//
// The hub follows the standard gorilla pattern: register/unregister/
// broadcast channels serialized by a single Run loop, per-client send
// buffers, read/write pumps with ping-pong deadlines, and slow clients
// dropped rather than allowed to stall a session.
package playback

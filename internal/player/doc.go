// package player plays generated audio clips through the system speaker.
//
// Playback is backed by beep and requires cgo on linux. Builds without
// audio support compile against a no-op backend and report
// [Available] as false.
package player

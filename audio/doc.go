// Package audio turns grouped page text into spoken MP3 files through
// external tools.
//
// Synthesis and transcoding are subprocess seams, not Go code: a TTS
// command renders text to wav, and ffmpeg handles wav-to-mp3 encoding and
// lossless concatenation. Both run synchronously, one call at a time, and
// a non-zero exit is an error carrying the tool's output.
//
//   - [Synthesizer] wraps the TTS command line, defaulting to the
//     mlx-audio Kokoro-82M invocation
//   - [FFmpeg] wraps mp3 encoding and concat-demuxer merging
//
// Neither tool is probed at startup; the first failing call reports the
// problem.
package audio

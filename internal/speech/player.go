package speech

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// Player plays synthesized audio through a platform media player.
// Unlike synthesis, playback failures propagate as errors: there is
// no meaningful fallback for "audio failed to play".
type Player struct{}

// NewPlayer creates an audio player.
func NewPlayer() *Player {
	return &Player{}
}

// Play hands the audio handle to a platform player and waits for
// natural completion. The process (and any platform resources it
// held) is released when the command returns.
func (p *Player) Play(ctx context.Context, handle *AudioHandle) error {
	if handle == nil || handle.Path == "" {
		return fmt.Errorf("no audio to play")
	}

	cmd, err := playbackCommand(ctx, handle.Path)
	if err != nil {
		return err
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("audio playback failed: %w", err)
	}
	return nil
}

// playbackCommand picks a platform-specific player binary.
func playbackCommand(ctx context.Context, audioFile string) (*exec.Cmd, error) {
	switch runtime.GOOS {
	case "darwin":
		return exec.CommandContext(ctx, "afplay", audioFile), nil
	case "linux":
		// mpg123 first since it handles MP3 files best.
		if _, err := exec.LookPath("mpg123"); err == nil {
			return exec.CommandContext(ctx, "mpg123", "-q", audioFile), nil
		}
		if _, err := exec.LookPath("ffplay"); err == nil {
			return exec.CommandContext(ctx, "ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet", audioFile), nil
		}
		if _, err := exec.LookPath("play"); err == nil {
			return exec.CommandContext(ctx, "play", "-q", audioFile), nil
		}
		if _, err := exec.LookPath("paplay"); err == nil {
			return exec.CommandContext(ctx, "paplay", audioFile), nil
		}
		return nil, fmt.Errorf("no audio player found. Install mpg123, ffplay, sox, or paplay")
	case "windows":
		return exec.CommandContext(ctx, "cmd", "/c", "start", "/min", "/wait", audioFile), nil
	default:
		return nil, fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}

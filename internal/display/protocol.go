// Package display shows rendered scenes on a networked pixel panel that
// speaks the Pixoo HTTP protocol: JSON commands POSTed to
// http://<ip>:<port>/post, each answered with {"error_code": 0, ...}.
//
// Images travel as animations. A still frame is an animation of one.
package display

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/jwulff/vaint-go/internal/domain"
)

// DeviceSize is the side of the panel in pixels.
const DeviceSize = 64

// MaxFrames is the longest animation the panel accepts.
const MaxFrames = 40

// DefaultDelay is how long each animation frame is shown when none is set.
const DefaultDelay = 250 * time.Millisecond

const (
	cmdSendGif       = "Draw/SendHttpGif"
	cmdGetGifID      = "Draw/GetHttpGifId"
	cmdResetGifID    = "Draw/ResetHttpGifId"
	cmdSetBrightness = "Channel/SetBrightness"
	cmdChannelIndex  = "Channel/GetIndex"
)

// picIDLimit is where the animation counter is reset; the panel stops
// accepting new animations once it has cached too many.
const picIDLimit = 32

// Animation is a looping sequence of frames.
type Animation struct {
	Frames []*domain.Frame
	Delay  time.Duration
}

// Still wraps a single frame.
func Still(frame *domain.Frame) Animation {
	return Animation{Frames: []*domain.Frame{frame}}
}

// trimmed keeps at most MaxFrames frames, sampled evenly. The last frame
// always survives so the animation ends on the finished scene.
func (a Animation) trimmed() Animation {
	n := len(a.Frames)
	if n <= MaxFrames {
		return a
	}
	frames := make([]*domain.Frame, MaxFrames)
	for i := range frames {
		frames[i] = a.Frames[i*(n-1)/(MaxFrames-1)]
	}
	a.Frames = frames
	return a
}

type command struct {
	Command string `json:"Command"`
}

type brightnessCommand struct {
	Command    string `json:"Command"`
	Brightness int    `json:"Brightness"`
}

// gifCommand carries one frame of an animation. All frames of an animation
// share PicID and PicNum; PicOffset orders them.
type gifCommand struct {
	Command   string `json:"Command"`
	PicNum    int    `json:"PicNum"`
	PicWidth  int    `json:"PicWidth"`
	PicOffset int    `json:"PicOffset"`
	PicID     int    `json:"PicID"`
	PicSpeed  int    `json:"PicSpeed"`
	PicData   string `json:"PicData"`
}

// reply is the body the panel answers every command with.
type reply struct {
	ErrorCode int `json:"error_code"`
	PicID     int `json:"PicId"`
}

// DeviceError is a command the panel answered with a non-zero error code.
type DeviceError struct {
	Command string
	Code    int
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("display: %s failed with error code %d", e.Command, e.Code)
}

// gifCommands encodes the frames of a, which must already be panel sized.
func gifCommands(a Animation, picID int) []gifCommand {
	delay := a.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}

	cmds := make([]gifCommand, len(a.Frames))
	for i, f := range a.Frames {
		cmds[i] = gifCommand{
			Command:   cmdSendGif,
			PicNum:    len(a.Frames),
			PicWidth:  f.Width,
			PicOffset: i,
			PicID:     picID,
			PicSpeed:  int(delay / time.Millisecond),
			PicData:   base64.StdEncoding.EncodeToString(f.Pixels),
		}
	}
	return cmds
}

func clampBrightness(level int) int {
	return min(max(level, 0), 100)
}

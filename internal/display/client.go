package display

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jwulff/vaint-go/internal/domain"
)

// DefaultPort is the panel's HTTP port.
const DefaultPort = 80

// DefaultTimeout bounds a single command.
const DefaultTimeout = 5 * time.Second

// Client talks to one panel.
type Client struct {
	IP         string
	Port       int
	HTTPClient *http.Client
	// Background fills the borders when a non-square frame is fitted.
	Background domain.RGB

	url string // replaces the computed endpoint in tests
}

// NewClient creates a client for the panel at ip on DefaultPort.
func NewClient(ip string) *Client {
	return &Client{
		IP:         ip,
		Port:       DefaultPort,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		Background: domain.Black,
	}
}

// Endpoint returns the URL commands are posted to.
func (c *Client) Endpoint() string {
	if c.url != "" {
		return c.url
	}
	return fmt.Sprintf("http://%s:%d/post", c.IP, c.Port)
}

// do posts cmd and decodes the reply. A non-zero error code becomes a
// *DeviceError.
func (c *Client) do(ctx context.Context, name string, cmd any) (reply, error) {
	var r reply
	data, err := json.Marshal(cmd)
	if err != nil {
		return r, fmt.Errorf("encoding %s: %w", name, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(data))
	if err != nil {
		return r, fmt.Errorf("building %s request: %w", name, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return r, fmt.Errorf("%s: %w", name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return r, fmt.Errorf("%s: reading reply: %w", name, err)
	}
	if resp.StatusCode != http.StatusOK {
		return r, fmt.Errorf("%s: status %d: %s", name, resp.StatusCode, bytes.TrimSpace(body))
	}
	if err := json.Unmarshal(body, &r); err != nil {
		return r, fmt.Errorf("%s: decoding reply: %w", name, err)
	}
	if r.ErrorCode != 0 {
		return r, &DeviceError{Command: name, Code: r.ErrorCode}
	}
	return r, nil
}

// nextPicID returns the id for a new animation, resetting the panel's
// counter when it runs high.
func (c *Client) nextPicID(ctx context.Context) (int, error) {
	r, err := c.do(ctx, cmdGetGifID, command{Command: cmdGetGifID})
	if err != nil {
		return 0, err
	}
	if r.PicID+1 < picIDLimit {
		return r.PicID + 1, nil
	}
	if _, err := c.do(ctx, cmdResetGifID, command{Command: cmdResetGifID}); err != nil {
		return 0, err
	}
	return 1, nil
}

// Play fits every frame of a to the panel and sends it. Animations longer
// than MaxFrames are sampled down.
func (c *Client) Play(ctx context.Context, a Animation) error {
	if len(a.Frames) == 0 {
		return errors.New("display: animation has no frames")
	}
	a = a.trimmed()
	fitted := make([]*domain.Frame, len(a.Frames))
	for i, f := range a.Frames {
		fitted[i] = Fit(f, DeviceSize, c.Background)
	}
	a.Frames = fitted

	id, err := c.nextPicID(ctx)
	if err != nil {
		return err
	}
	for _, cmd := range gifCommands(a, id) {
		if _, err := c.do(ctx, cmdSendGif, cmd); err != nil {
			return fmt.Errorf("frame %d of %d: %w", cmd.PicOffset+1, cmd.PicNum, err)
		}
	}
	return nil
}

// Present shows a single frame.
func (c *Client) Present(ctx context.Context, frame *domain.Frame) error {
	return c.Play(ctx, Still(frame))
}

// SetBrightness sets the panel brightness, clamped to 0-100.
func (c *Client) SetBrightness(ctx context.Context, level int) error {
	_, err := c.do(ctx, cmdSetBrightness, brightnessCommand{Command: cmdSetBrightness, Brightness: clampBrightness(level)})
	return err
}

// IsReachable reports whether the panel answers a harmless query.
func (c *Client) IsReachable(ctx context.Context) bool {
	_, err := c.do(ctx, cmdChannelIndex, command{Command: cmdChannelIndex})
	return err == nil
}

// Package main is the entry point for the vaint command line tool.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/jwulff/vaint-go/internal/config"
	"github.com/jwulff/vaint-go/internal/display"
	"github.com/jwulff/vaint-go/internal/domain"
	"github.com/jwulff/vaint-go/internal/render"
	"github.com/jwulff/vaint-go/internal/storage"
	"github.com/jwulff/vaint-go/internal/storage/sqlite"
)

// settingDisplayIP remembers the last display a scene was sent to.
const settingDisplayIP = "display.ip"

// storeTimeout bounds a single library query.
const storeTimeout = 5 * time.Second

func main() {
	logger := newLogger(os.Getenv("VAINT_LOG"))
	slog.SetDefault(logger)
	render.SetLogger(logger)

	if len(os.Args) < 2 {
		showUsage()
		return
	}

	args := os.Args[2:]
	var err error
	switch os.Args[1] {
	case "render":
		err = renderCmd(args)
	case "preview":
		err = previewCmd(args)
	case "scan":
		err = scanCmd()
	case "devices":
		err = devicesCmd()
	case "forget":
		err = forgetCmd(args)
	case "brightness":
		err = brightnessCmd(args)
	case "send":
		err = sendCmd(args)
	case "watch":
		err = watchCmd(args)
	case "save":
		err = saveCmd(args)
	case "scenes":
		err = scenesCmd()
	case "show":
		err = showCmd(args)
	case "delete":
		err = deleteCmd(args)
	case "history":
		err = historyCmd(args)
	default:
		showUsage()
		return
	}

	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func showUsage() {
	fmt.Println("Vaint - shape rasterizer")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  vaint render <scene.json> <out.png> [scale]  - Render a scene to PNG")
	fmt.Println("  vaint preview [scene.json|image.png] [cols]  - ASCII preview of a scene or PNG")
	fmt.Println("  vaint scan                                   - Scan for displays on the local network")
	fmt.Println("  vaint devices                                - List displays found by scan")
	fmt.Println("  vaint forget <device>                        - Remove a stored display")
	fmt.Println("  vaint brightness <0-100> [device]            - Set display brightness")
	fmt.Println("  vaint send <scene.json> [device]             - Send a scene to a display")
	fmt.Println("  vaint watch <scene.json> [device]            - Resend whenever the scene file changes")
	fmt.Println("  vaint save <scene.json> <name>               - Store a scene in the library")
	fmt.Println("  vaint scenes                                 - List stored scenes")
	fmt.Println("  vaint show <name> <out.png> [scale]          - Render a stored scene to PNG")
	fmt.Println("  vaint delete <name>                          - Remove a stored scene")
	fmt.Println("  vaint history [hours]                        - List recent renders")
	fmt.Println()
	fmt.Println("A device is a stored device ID or an IP address. Without one, the last")
	fmt.Println("display used is picked, then the first stored device.")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  VAINT_CONFIG  - Scene file used when none is given")
	fmt.Println("  VAINT_DB      - Scene library database (default: vaint.db)")
	fmt.Println("  VAINT_LOG     - Log level: debug, info, warn, error (default: info)")
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

func openStore() (*sqlite.Store, error) {
	path := os.Getenv("VAINT_DB")
	if path == "" {
		path = "vaint.db"
	}
	store, err := sqlite.NewFileStore(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return store, nil
}

// renderConfig rasterizes every shape of cfg onto a fresh frame.
func renderConfig(cfg *config.Config) (*domain.Frame, error) {
	objects, err := cfg.Objects()
	if err != nil {
		return nil, err
	}
	return render.RenderScene(objects, cfg.Canvas.Size(), cfg.Background.RGB), nil
}

func loadAndRender(path string) (*domain.Frame, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return renderConfig(cfg)
}

func parseScale(args []string, i int) (int, error) {
	if len(args) <= i {
		return 1, nil
	}
	scale, err := strconv.Atoi(args[i])
	if err != nil || scale < 1 {
		return 0, fmt.Errorf("invalid scale %q", args[i])
	}
	return scale, nil
}

// logRender appends to the render log. Failures only warn; the render itself succeeded.
func logRender(store storage.Store, scene, target string, started time.Time) {
	entry := storage.RenderEntry{Scene: scene, Target: target, Timestamp: started, Duration: time.Since(started)}
	if err := store.RecordRenders(context.Background(), []storage.RenderEntry{entry}); err != nil {
		slog.Warn("could not record render", "err", err)
	}
}

func renderCmd(args []string) error {
	if len(args) < 2 {
		return errors.New("usage: vaint render <scene.json> <out.png> [scale]")
	}
	scale, err := parseScale(args, 2)
	if err != nil {
		return err
	}

	started := time.Now()
	frame, err := loadAndRender(args[0])
	if err != nil {
		return err
	}
	if err := render.SavePNG(args[1], frame, scale); err != nil {
		return err
	}
	slog.Info("rendered scene", "scene", args[0], "out", args[1], "elapsed", time.Since(started))
	fmt.Printf("Wrote %s (%dx%d)\n", args[1], frame.Width*scale, frame.Height*scale)
	return nil
}

func previewCmd(args []string) error {
	path := ""
	if len(args) > 0 {
		path = args[0]
	}
	cols := 80
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid column count %q", args[1])
		}
		cols = n
	}

	var frame *domain.Frame
	var err error
	if strings.EqualFold(filepath.Ext(path), ".png") {
		frame, err = loadPNG(path)
	} else {
		frame, err = loadAndRender(path)
	}
	if err != nil {
		return err
	}
	fmt.Printf("%dx%d preview:\n\n", frame.Width, frame.Height)
	return render.WriteASCII(os.Stdout, frame, cols)
}

func loadPNG(path string) (*domain.Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return render.ReadPNG(f)
}

func scanCmd() error {
	fmt.Println("Scanning for displays on local network...")
	fmt.Println()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	devices, err := display.Scan(ctx, func(current, total int) {
		pct := current * 100 / total
		bar := strings.Repeat("█", pct/5) + strings.Repeat("░", 20-pct/5)
		fmt.Printf("\r  [%s] %d%% (%d/%d)", bar, pct, current, total)
	})
	fmt.Println()
	if err != nil {
		return err
	}

	fmt.Println()
	if len(devices) == 0 {
		fmt.Println("No displays found.")
		return nil
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	fmt.Printf("Found %d device(s):\n\n", len(devices))
	for i, d := range devices {
		fmt.Printf("  %d. %s - %s\n", i+1, d.Name, d.IP)
		if err := store.SaveDevice(ctx, storage.NewDevice(deviceID(d.IP), d.IP, d.Name, "pixoo64")); err != nil {
			slog.Warn("could not store device", "ip", d.IP, "err", err)
		}
	}
	fmt.Println()
	fmt.Println("To send a scene:")
	fmt.Printf("  vaint send scene.json %s\n", deviceID(devices[0].IP))
	return nil
}

// deviceID names a scanned display after the last part of its address, so
// "192.168.1.42" becomes "pixoo-42".
func deviceID(ip string) string {
	return "pixoo-" + ip[strings.LastIndexAny(ip, ".:")+1:]
}

func devicesCmd() error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	devices, err := store.GetDevices(ctx)
	if err != nil {
		return err
	}
	if len(devices) == 0 {
		fmt.Println("No displays stored. Run 'vaint scan' first.")
		return nil
	}
	current, err := store.GetSetting(ctx, settingDisplayIP)
	if err != nil && !storage.IsNotFound(err) {
		return err
	}
	for _, d := range devices {
		mark := " "
		if d.IP == current {
			mark = "*"
		}
		fmt.Printf("%s %-12s %-16s %-20s seen %s\n", mark, d.ID, d.IP, d.Name, d.LastSeen.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

func forgetCmd(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: vaint forget <device>")
	}
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := forget(context.Background(), store, args[0]); err != nil {
		return err
	}
	fmt.Printf("Forgot display %q\n", args[0])
	return nil
}

// forget removes a stored display, and the remembered display IP with it
// when it points at the same panel.
func forget(ctx context.Context, store storage.Store, id string) error {
	device, err := store.GetDevice(ctx, id)
	if err != nil {
		return err
	}
	if err := store.DeleteDevice(ctx, id); err != nil {
		return err
	}
	current, err := store.GetSetting(ctx, settingDisplayIP)
	switch {
	case storage.IsNotFound(err):
		return nil
	case err != nil:
		return err
	case current == device.IP:
		return store.DeleteSetting(ctx, settingDisplayIP)
	}
	return nil
}

func brightnessCmd(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: vaint brightness <0-100> [device]")
	}
	level, err := strconv.Atoi(args[0])
	if err != nil || level < 0 || level > 100 {
		return fmt.Errorf("invalid brightness %q", args[0])
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ip, err := resolveIP(store, args, 1)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), display.DefaultTimeout)
	defer cancel()
	if err := display.NewClient(ip).SetBrightness(ctx, level); err != nil {
		return err
	}
	fmt.Printf("Brightness of %s set to %d\n", ip, level)
	return nil
}

// resolveIP turns args[i] into an address: a stored device ID resolves to
// its IP, anything else is taken as an IP. Without an argument it falls back
// to the last display used, then to the first stored device.
func resolveIP(store storage.Store, args []string, i int) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if len(args) > i {
		device, err := store.GetDevice(ctx, args[i])
		switch {
		case err == nil:
			return device.IP, nil
		case storage.IsNotFound(err):
			return args[i], nil
		default:
			return "", err
		}
	}

	ip, err := store.GetSetting(ctx, settingDisplayIP)
	if !storage.IsNotFound(err) {
		return ip, err
	}
	devices, err := store.GetDevices(ctx)
	if err != nil {
		return "", err
	}
	if len(devices) == 0 {
		return "", errors.New("no display given, none remembered and none stored; run 'vaint scan'")
	}
	return devices[0].IP, nil
}

// sceneAnimation renders cfg for the panel. A scene with display.animate set
// builds up one layer per frame, starting from the bare background.
func sceneAnimation(cfg *config.Config) (display.Animation, error) {
	objects, err := cfg.Objects()
	if err != nil {
		return display.Animation{}, err
	}
	size := cfg.Canvas.Size()
	background := cfg.Background.RGB
	frame := domain.NewFrameWithColor(size.Width, size.Height, background)
	layers := render.Compose(objects, size)

	if cfg.Display == nil || !cfg.Display.Animate {
		render.Paint(frame, layers)
		return display.Still(frame), nil
	}
	var frames []*domain.Frame
	render.PaintSteps(frame, layers, func(_ int, f *domain.Frame) {
		frames = append(frames, display.Snapshot(f, background))
	})
	return display.Animation{Frames: frames, Delay: cfg.Display.Delay()}, nil
}

func present(store storage.Store, client *display.Client, scenePath string) error {
	started := time.Now()
	cfg, err := config.Load(scenePath)
	if err != nil {
		return err
	}
	anim, err := sceneAnimation(cfg)
	if err != nil {
		return err
	}
	// Letterbox bars take the scene background.
	client.Background = cfg.Background.RGB

	if cfg.Display != nil && cfg.Display.Brightness != nil {
		ctx, cancel := context.WithTimeout(context.Background(), display.DefaultTimeout)
		err := client.SetBrightness(ctx, *cfg.Display.Brightness)
		cancel()
		if err != nil {
			return err
		}
	}

	// One command per frame plus the id request.
	ctx, cancel := context.WithTimeout(context.Background(), display.DefaultTimeout*time.Duration(len(anim.Frames)+1))
	defer cancel()
	if err := client.Play(ctx, anim); err != nil {
		return err
	}
	slog.Debug("presented scene", "scene", scenePath, "ip", client.IP, "frames", len(anim.Frames))
	logRender(store, filepath.Base(scenePath), client.IP, started)
	return nil
}

// send presents a scene and remembers the display for next time.
func send(store storage.Store, client *display.Client, scenePath string) error {
	ctx, cancel := context.WithTimeout(context.Background(), display.DefaultTimeout)
	reachable := client.IsReachable(ctx)
	cancel()
	if !reachable {
		return fmt.Errorf("cannot reach display at %s", client.IP)
	}

	if err := present(store, client, scenePath); err != nil {
		return err
	}

	// Presenting can take longer than a command timeout, so the settings
	// write gets its own deadline.
	ctx, cancel = context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := store.SetSetting(ctx, settingDisplayIP, client.IP); err != nil {
		slog.Warn("could not remember display", "err", err)
	}
	return nil
}

func sendCmd(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: vaint send <scene.json> [IP]")
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ip, err := resolveIP(store, args, 1)
	if err != nil {
		return err
	}
	fmt.Printf("Sending %s to display at %s...\n", args[0], ip)

	if err := send(store, display.NewClient(ip), args[0]); err != nil {
		return err
	}
	fmt.Println("Scene sent successfully!")
	return nil
}

func watchCmd(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: vaint watch <scene.json> [IP]")
	}
	path := args[0]

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ip, err := resolveIP(store, args, 1)
	if err != nil {
		return err
	}
	client := display.NewClient(ip)

	fmt.Printf("Watching %s, sending to %s\n", path, ip)
	fmt.Println("Press Ctrl+C to stop")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	var lastMod time.Time
	for {
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		if info.ModTime().After(lastMod) {
			lastMod = info.ModTime()
			now := time.Now()
			if err := present(store, client, path); err != nil {
				fmt.Printf("[%s] Error: %v\n", now.Format("15:04:05"), err)
			} else {
				fmt.Printf("[%s] Frame sent\n", now.Format("15:04:05"))
			}
		}

		select {
		case <-ticker.C:
		case <-sigChan:
			fmt.Println("\nStopping...")
			return nil
		}
	}
}

func saveCmd(args []string) error {
	if len(args) < 2 {
		return errors.New("usage: vaint save <scene.json> <name>")
	}

	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := cfg.Write(&buf); err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SaveScene(context.Background(), storage.NewScene(args[1], buf.Bytes())); err != nil {
		return fmt.Errorf("saving scene: %w", err)
	}
	fmt.Printf("Saved scene %q (%d shapes)\n", args[1], len(cfg.Shapes))
	return nil
}

func scenesCmd() error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	scenes, err := store.GetScenes(context.Background())
	if err != nil {
		return err
	}
	if len(scenes) == 0 {
		fmt.Println("No scenes stored.")
		return nil
	}
	for _, s := range scenes {
		fmt.Printf("  %-20s updated %s\n", s.Name, s.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

// sceneFrame returns the stored scene's frame, rendering and caching it
// when the cache is missing or older than the scene.
func sceneFrame(ctx context.Context, store storage.Store, name string) (*domain.Frame, error) {
	scene, err := store.GetScene(ctx, name)
	if err != nil {
		return nil, err
	}

	cached, err := store.GetCachedFrame(ctx, name)
	switch {
	case err == nil && cached.Fresh(scene):
		slog.Debug("using cached frame", "scene", name)
		return &domain.Frame{Width: cached.Width, Height: cached.Height, Pixels: cached.Pixels}, nil
	case err != nil && !storage.IsNotFound(err):
		return nil, err
	}

	cfg, err := config.Parse(bytes.NewReader(scene.Config))
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", name, err)
	}
	frame, err := renderConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", name, err)
	}

	err = store.CacheFrame(ctx, &storage.CachedFrame{
		Scene:       name,
		Width:       frame.Width,
		Height:      frame.Height,
		Pixels:      frame.Pixels,
		GeneratedAt: time.Now(),
	})
	if err != nil {
		slog.Warn("could not cache frame", "scene", name, "err", err)
	}
	return frame, nil
}

func showCmd(args []string) error {
	if len(args) < 2 {
		return errors.New("usage: vaint show <name> <out.png> [scale]")
	}
	scale, err := parseScale(args, 2)
	if err != nil {
		return err
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	started := time.Now()
	frame, err := sceneFrame(context.Background(), store, args[0])
	if err != nil {
		return err
	}
	if err := render.SavePNG(args[1], frame, scale); err != nil {
		return err
	}
	logRender(store, args[0], args[1], started)
	fmt.Printf("Wrote %s\n", args[1])
	return nil
}

func deleteCmd(args []string) error {
	if len(args) < 1 {
		return errors.New("usage: vaint delete <name>")
	}
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	if _, err := store.GetScene(ctx, args[0]); err != nil {
		return err
	}
	if err := store.DeleteScene(ctx, args[0]); err != nil {
		return err
	}
	fmt.Printf("Deleted scene %q\n", args[0])
	return nil
}

func historyCmd(args []string) error {
	hours := 24
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid hour count %q", args[0])
		}
		hours = n
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	now := time.Now()
	// Keep a month of history.
	if err := store.DeleteRendersBefore(ctx, now.AddDate(0, -1, 0)); err != nil {
		slog.Warn("could not prune render log", "err", err)
	}

	entries, err := store.QueryRenders(ctx, now.Add(-time.Duration(hours)*time.Hour), now)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Printf("No renders in the last %d hours.\n", hours)
		return nil
	}
	for _, e := range entries {
		fmt.Printf("  [%s] %-20s -> %-24s %v\n", e.Timestamp.Format("01-02 15:04:05"), e.Scene, e.Target, e.Duration)
	}
	return nil
}

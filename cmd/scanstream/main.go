// Command scanstream streams a demo pattern through the autonomous
// scatter-gather pipeline and reports what the sink saw.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/rasterlab/scanstream/datarecording"
	"github.com/rasterlab/scanstream/dma"
	"github.com/rasterlab/scanstream/monitoring"
	"github.com/rasterlab/scanstream/pixel"
	"github.com/rasterlab/scanstream/sim"
	"github.com/rasterlab/scanstream/sim/directconnection"
	"github.com/rasterlab/scanstream/video"
)

var (
	numFrames   uint64
	patternName string
	barWidth    int
	recordPath  string
	useMonitor  bool
	monitorPort int
	openMonitor bool
)

var rootCmd = &cobra.Command{
	Use:   "scanstream",
	Short: "Stream a demo pattern through the self-re-arming raster pipeline",
	Run: func(_ *cobra.Command, _ []string) {
		run()
	},
}

func init() {
	// A .env file can preset the flags' environment fallbacks.
	_ = godotenv.Load()

	rootCmd.Flags().Uint64Var(&numFrames, "frames", 3,
		"number of frames to stream before draining")
	rootCmd.Flags().StringVar(&patternName, "pattern", "bars",
		"demo pattern to paint: bars or wash")
	rootCmd.Flags().IntVar(&barWidth, "bar-width", 40,
		"bar width in pixels for the bars pattern")
	rootCmd.Flags().StringVar(&recordPath, "record",
		os.Getenv("SCANSTREAM_RECORD"),
		"record per-frame statistics into this SQLite database")
	rootCmd.Flags().BoolVar(&useMonitor, "monitor", false,
		"serve the monitoring API while streaming")
	rootCmd.Flags().IntVar(&monitorPort, "monitor-port", 0,
		"port for the monitoring API")
	rootCmd.Flags().BoolVar(&openMonitor, "open-monitor", false,
		"open the monitoring API in a browser")
}

func run() {
	geom := video.SCART

	engine := sim.NewSerialEngine()
	pool := dma.NewChannelPool(12)

	store := pixel.NewStore(geom.ResX, geom.ActiveLines)
	paint(store)

	sink := video.MakeSinkBuilder().
		WithEngine(engine).
		WithFreq(6 * sim.MHz).
		WithGeometry(geom).
		WithFrameBudget(numFrames).
		Build("Sink")

	chain := dma.BuildChain(geom, store.Raw(), byte(pixel.Black))

	xferEngine := dma.MakeBuilder().
		WithEngine(engine).
		WithFreq(6 * sim.MHz).
		WithChain(chain).
		WithSinkPort(sink.InPort.AsRemote()).
		WithChannelPool(pool).
		Build("TransferEngine")

	syncGen := video.MakeSyncGeneratorBuilder().
		WithEngine(engine).
		WithFreq(6 * sim.MHz).
		WithGeometry(geom).
		WithFrameBudget(numFrames).
		Build("SyncGen")
	syncGen.Configure(video.PinCSync, 16)
	syncGen.Configure(video.PinRed, 18)
	syncGen.Configure(video.PinGreen, 19)
	syncGen.Configure(video.PinBlue, 20)

	conn := directconnection.MakeBuilder().
		WithEngine(engine).
		WithFreq(6 * sim.MHz).
		Build("Conn")
	conn.PlugIn(xferEngine.DataPort, 1)
	conn.PlugIn(sink.InPort, 1)

	if recordPath != "" {
		recorder := datarecording.New(recordPath)
		sink.AcceptHook(datarecording.NewFrameHook(recorder))
	}

	if useMonitor {
		monitor := monitoring.NewMonitor()
		if monitorPort != 0 {
			monitor.WithPortNumber(monitorPort)
		}
		monitor.RegisterEngine(engine)
		monitor.RegisterComponent(xferEngine)
		monitor.RegisterComponent(sink)

		bar := monitor.CreateProgressBar("Frames", numFrames)
		sink.AcceptHook(monitoring.NewFrameProgressHook(bar))

		port := monitor.StartServer()
		if openMonitor {
			_ = browser.OpenURL(
				fmt.Sprintf("http://localhost:%d/api/progress", port))
		}
	}

	// Configuration is complete; cross the start barrier and let the
	// pipeline run itself.
	xferEngine.Arm()
	video.StartTogether(xferEngine, syncGen)

	err := engine.Run()
	if err != nil {
		log.Fatal(err)
	}

	report(xferEngine, sink)
}

func paint(store *pixel.Store) {
	switch patternName {
	case "bars":
		pixel.VerticalBars(store, barWidth)
	case "wash":
		pixel.DiagonalWash(store)
	default:
		log.Fatalf("unknown pattern %q", patternName)
	}
}

func report(xferEngine *dma.Comp, sink *video.Comp) {
	geom := sink.Geometry()

	fmt.Printf("geometry:  %dx%d active, %d+%d border lines\n",
		geom.ResX, geom.ActiveLines, geom.BorderTop, geom.BorderBottom)
	fmt.Printf("frames:    %d\n", sink.FrameCount())
	fmt.Printf("elements:  %d sent, %d per frame\n",
		xferEngine.ElementsSent(), geom.ElementsPerFrame())
	fmt.Printf("restarts:  %d\n", xferEngine.Restarts())

	if frame := sink.LastFrame(); frame != nil {
		fmt.Printf("last frame: %d elements, %.6fs - %.6fs\n",
			len(frame.Elements), frame.Start, frame.End)
	}
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

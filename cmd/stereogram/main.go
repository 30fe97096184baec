// stereogram - side-by-side stereo wireframe viewer for the Platonic solids
// and the regular 4-polytopes (tesseract, 4-simplex, 4-orthoplex).
//
// Cross or relax your eyes until the two red circles fuse into one.
package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/stereogram/internal/stereogram"
	"github.com/lukaszgryglicki/stereogram/internal/window"
)

var (
	configPath string
	debug      bool
	frames     int
	gifOut     string
	pngPrefix  string
	outWidth   int
)

const controls = `Controls:
  SPACE       - Pause/resume rotation
  S           - Cycle Platonic solids
  D           - Toggle 3D/4D
  H           - Cycle hypersolids
  C           - Toggle depth (Z) coloring
  W           - Toggle W-depth coloring (4D)
  B           - Toggle black/white background
  O           - Toggle orthographic/perspective
  G           - Toggle fusion guides
  T           - Toggle text/UI
  V           - Toggle rotation sliders (drag to set angle/speed)
  R           - Reset rotation angles
  LEFT/RIGHT  - Eye separation
  UP/DOWN     - Perspective distance
  ESC         - Quit`

func loadConfig() (*stereogram.Config, error) {
	stereogram.Debug = debug || os.Getenv("DEBUG") != ""
	stereogram.PNG = stereogram.PNG || os.Getenv("PNG") != ""
	return stereogram.LoadConfig(configPath)
}

func main() {
	root := &cobra.Command{
		Use:   "stereogram",
		Short: "Stereoscopic wireframe viewer for 3D and 4D polytopes",
		Long:  "stereogram - Stereoscopic wireframe viewer for 3D and 4D polytopes\n\n" + controls,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return window.Run(cfg)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "JSON config file (defaults are used when empty)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Verbose debug output (same as DEBUG=1)")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the animation headlessly to a GIF or PNG sequence",
		Long:  "Render consecutive frames of the configured view without opening a window. Set PNG=1 or --png to write a PNG sequence instead of a GIF.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("frames") {
				cfg.Snapshot.Frames = frames
			}
			if gifOut != "" {
				cfg.Snapshot.GIFOut = gifOut
			}
			if pngPrefix != "" {
				cfg.Snapshot.PNGPrefix = pngPrefix
			}
			if cmd.Flags().Changed("width") {
				cfg.Snapshot.OutputWidth = outWidth
			}
			if cfg.Snapshot.Frames <= 0 {
				return fmt.Errorf("frames must be positive, got %d", cfg.Snapshot.Frames)
			}
			if os.Getenv("PROFILE") != "" {
				f, err := os.Create("cpu.out")
				if err != nil {
					return err
				}
				if err := pprof.StartCPUProfile(f); err != nil {
					return err
				}
				defer func() {
					pprof.StopCPUProfile()
					_ = f.Close()
				}()
			}
			return stereogram.RunSnapshot(cfg)
		},
	}
	snapshotCmd.Flags().IntVarP(&frames, "frames", "n", stereogram.SnapshotFrames, "Number of frames")
	snapshotCmd.Flags().StringVarP(&gifOut, "out", "o", "", "GIF output path")
	snapshotCmd.Flags().StringVar(&pngPrefix, "png-prefix", "", "PNG sequence prefix")
	snapshotCmd.Flags().BoolVar(&stereogram.PNG, "png", false, "Write a PNG sequence instead of a GIF")
	snapshotCmd.Flags().IntVar(&outWidth, "width", 0, "Downscale frames to this width (0 keeps the render size)")
	root.AddCommand(snapshotCmd)

	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the built-in polytopes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-14s %3s %8s %6s\n", "NAME", "DIM", "VERTICES", "EDGES")
			for _, e := range stereogram.Catalog() {
				fmt.Fprintf(out, "%-14s %3d %8d %6d\n", e.Name, e.Dim, e.Vertices, e.Edges)
			}
			return nil
		},
	}
	root.AddCommand(catalogCmd)

	if err := root.Execute(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/AliceZed8/zfbv/fb"
	"github.com/AliceZed8/zfbv/internal"
	"github.com/AliceZed8/zfbv/internal/consts"
	"github.com/AliceZed8/zfbv/raster"
	"github.com/AliceZed8/zfbv/tty"
	"github.com/AliceZed8/zfbv/viewer"
)

var usageStr = `Usage: ` + consts.ProgramName + ` <device> <image>
Example: ` + consts.ProgramName + ` ` + consts.DefaultFramebufferDevice + ` images/test2.jpg`

var rootCmd = &cobra.Command{
	Use:   consts.ProgramName + ` <device> <image>`,
	Short: consts.ProgramName + ` displays an image on a Linux framebuffer device`,
	Long: consts.ProgramName + ` displays an image on a Linux framebuffer device.

Keys:
  +  zoom in
  -  zoom out
  r  reset zoom
  q  quit`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 2 {
			fmt.Println(usageStr)
			os.Exit(1)
		}
		run(func() error { return view(args[0], args[1]) })
	},
}

var (
	debug  bool
	margin float64
	step   float64
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, `debug`, false, `debug errors`)
	rootCmd.Flags().Float64Var(&margin, `margin`, viewer.DefaultMargin, `fit-to-screen margin`)
	rootCmd.Flags().Float64Var(&step, `step`, viewer.DefaultStep, `zoom factor per keypress`)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(fn func() error) {
	if err := fn(); err != nil {
		if stackFramer, ok := err.(interface{ ErrorStack() string }); debug && ok {
			fmt.Println(stackFramer.ErrorStack())
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func view(devicePath, imagePath string) error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	closer := internal.NewCloser()
	defer func() { _ = closer.Close() }()

	surf, err := fb.Open(devicePath)
	if err != nil {
		return err
	}
	closer.AddClosers(surf)
	logger.Info(`framebuffer opened`,
		`device`, devicePath,
		`width`, surf.Width(),
		`height`, surf.Height(),
		`bpp`, surf.BytesPerPixel()*8,
	)

	img, err := raster.Load(imagePath)
	if err != nil {
		return err
	}

	keys, err := tty.Open()
	if err != nil {
		return err
	}
	closer.AddClosers(keys)

	// the console cursor keeps blinking over the framebuffer otherwise
	out := termenv.NewOutput(os.Stdout)
	out.HideCursor()
	closer.OnClose(func() error { out.ShowCursor(); return nil })

	v, err := viewer.New(surf, img, keys, &viewer.Options{
		Margin: margin,
		Step:   step,
		Logger: logger,
	})
	if err != nil {
		return err
	}
	return v.Run()
}

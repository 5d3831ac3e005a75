package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into input/output, upscaling, pipeline, display, and
// utility. The --config file is applied before the flag set is parsed so
// that flags always win over file values.

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// ParseFlags parses args (normally os.Args[1:]) into cfg. version is the
// build version shown by --version and help; the caller owns it so the
// -ldflags injection has a single target. On --help or --version it prints
// and exits. On error it returns non-nil (e.g. unknown flag or an unreadable
// --config file).
func ParseFlags(cfg *Config, version string, args []string) error {
	// The config file layer has to be applied before flag registration so
	// that file values become the flag defaults and explicit flags override
	// them. Peek the --config value without running the full parse.
	cfg.ConfigFile = peekConfigFlag(args)
	if err := LoadFile(cfg.ConfigFile, cfg); err != nil {
		return err
	}

	fs := flag.NewFlagSet("scaleup", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs, version) }

	var aux auxFlags

	definePathFlags(fs, cfg)
	defineUpscaleFlags(fs, cfg)
	definePipelineFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &aux)
	defineUtilityFlags(fs, cfg, &aux)

	if err := fs.Parse(args); err != nil {
		return err
	}

	applyAuxFlags(cfg, &aux)

	if aux.showHelp {
		printUsage(fs, version)
		os.Exit(0)
	}
	if aux.showVersion {
		fmt.Fprintln(os.Stdout, "scaleup v"+version)
		os.Exit(0)
	}

	if narg := fs.NArg(); narg != 0 {
		return fmt.Errorf("unexpected argument %q (videos are given via -i and -o)", fs.Arg(0))
	}

	cfg.TmpFramesDir = NormalizeDirArg(cfg.TmpFramesDir)
	cfg.OutFramesDir = NormalizeDirArg(cfg.OutFramesDir)
	return nil
}

// auxFlags holds boolean flags that are applied after Parse. These either
// override an enum (forceColor/noColor -> ColorMode) or trigger exit
// (showHelp, showVersion).
type auxFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// definePathFlags registers -i/--input and -o/--output.
func definePathFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.InputVideo, "input", cfg.InputVideo, "Input video file")
	fs.StringVar(&cfg.InputVideo, "i", cfg.InputVideo, "Same as --input")
	fs.StringVar(&cfg.OutputVideo, "output", cfg.OutputVideo, "Output video file")
	fs.StringVar(&cfg.OutputVideo, "o", cfg.OutputVideo, "Same as --output")
}

// defineUpscaleFlags registers -m/--model, -s/--scale, -g/--gpu, --upscaler.
func defineUpscaleFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.Model, "model", cfg.Model, "Upscaling model name")
	fs.StringVar(&cfg.Model, "m", cfg.Model, "Same as --model")
	fs.IntVar(&cfg.ScaleFactor, "scale", cfg.ScaleFactor, "Upscale factor")
	fs.IntVar(&cfg.ScaleFactor, "s", cfg.ScaleFactor, "Same as --scale")
	fs.StringVar(&cfg.GPUID, "gpu", cfg.GPUID, "GPU device id")
	fs.StringVar(&cfg.GPUID, "g", cfg.GPUID, "Same as --gpu")
	fs.StringVar(&cfg.UpscalerBin, "upscaler", cfg.UpscalerBin, "Upscaler binary name or path")
}

// definePipelineFlags registers -w/--workers, -r/--reset and the frame
// directory overrides.
func definePipelineFlags(fs *flag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Concurrent upscale workers")
	fs.IntVar(&cfg.Workers, "w", cfg.Workers, "Same as --workers")
	fs.BoolVar(&cfg.Reset, "reset", false, "Delete extracted and upscaled frames (asks first)")
	fs.BoolVar(&cfg.Reset, "r", false, "Same as --reset")
	fs.StringVar(&cfg.TmpFramesDir, "tmp-frames", cfg.TmpFramesDir, "Directory for extracted frames")
	fs.StringVar(&cfg.OutFramesDir, "out-frames", cfg.OutFramesDir, "Directory for upscaled frames")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, a *auxFlags) {
	fs.BoolVar(&a.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&a.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Verbose output (tool stderr, per-frame logs)")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "Same as --log")
}

// defineUtilityFlags registers --config, --version and --help.
func defineUtilityFlags(fs *flag.FlagSet, cfg *Config, a *auxFlags) {
	// --config was already consumed by peekConfigFlag; registered here so
	// the parser accepts it.
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "YAML config file (default: scaleup.yaml if present)")
	fs.BoolVar(&a.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&a.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&a.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&a.showHelp, "h", false, "Same as --help")
}

// applyAuxFlags copies override flag values into cfg.
func applyAuxFlags(cfg *Config, a *auxFlags) {
	if a.noColor {
		cfg.ColorMode = ColorNever
	} else if a.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// peekConfigFlag scans raw args for --config/-config and returns its value
// without disturbing the real parse. Supports both "--config path" and
// "--config=path" forms. Only dash-prefixed args are flag candidates: a
// flag value that happens to be the word "config" is not one.
func peekConfigFlag(args []string) string {
	for i, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		name := strings.TrimLeft(arg, "-")
		switch {
		case name == "config" && i+1 < len(args):
			return args[i+1]
		case strings.HasPrefix(name, "config="):
			return strings.TrimPrefix(name, "config=")
		}
	}
	return ""
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet, version string) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "scaleup v" + version + " — parallel video upscaler (ffmpeg + Real-ESRGAN)"},
		{"", ""},
		{"  scaleup [OPTIONS] -i <input video> -o <output video>", ""},
		{"", ""},
		{"Input/output", ""},
		{"  -i, --input <file>", "Input video file (required)"},
		{"  -o, --output <file>", "Output video file (required)"},
		{"", ""},
		{"Upscaling", ""},
		{"  -m, --model <name>", "Upscaling model (default: realesr-animevideov3-x4)"},
		{"  -s, --scale <factor>", "Upscale factor 1-4 (default: 4)"},
		{"  -g, --gpu <id>", "GPU device id (default: 0)"},
		{"  --upscaler <path>", "Upscaler binary (default: realesrgan-ncnn-vulkan)"},
		{"", ""},
		{"Pipeline", ""},
		{"  -w, --workers <n>", "Concurrent upscale workers (default: 1)"},
		{"  -r, --reset", "Delete extracted/upscaled frames and start over (asks first)"},
		{"  --tmp-frames <dir>", "Extracted frames directory (default: tmp_frames)"},
		{"  --out-frames <dir>", "Upscaled frames directory (default: out_frames)"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  --config <path>", "YAML config file (default: scaleup.yaml if present)"},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "System diagnostics (ffmpeg, ffprobe, upscaler, host)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

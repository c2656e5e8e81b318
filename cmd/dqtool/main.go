// dqtool is a CLI utility for inspecting the dual-quaternion skinning pipeline offline.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/dqskin/internal/animation"
	"github.com/Faultbox/dqskin/internal/config"
	"github.com/Faultbox/dqskin/internal/logger"
	"github.com/Faultbox/dqskin/internal/mesh"
	"github.com/Faultbox/dqskin/internal/skin"
	"github.com/Faultbox/dqskin/internal/texture"
	"github.com/Faultbox/dqskin/pkg/math"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Diagnostics go to stderr so command output can be piped
	cfg := logger.DefaultConfig()
	cfg.Level = "warn"
	cfg.Console = logger.ConsoleStderr
	if err := logger.Setup(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "weights", "w":
		cmdWeights(args)
	case "frames", "f":
		cmdFrames(args)
	case "stream":
		cmdStream(args)
	case "mesh", "m":
		cmdMesh(args)
	case "texture", "tex":
		cmdTexture(args)
	case "config":
		cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`dqtool - dual-quaternion skinning utility

Usage:
  dqtool <command> [options]

Commands:
  weights [-curve name] [-half-width a] [-n N]        Print the bone weight curve
  frames [-config file] [-t0 s] [-dt s] [-n N]        Print bone transforms per frame
         [-format text|yaml] [-deform]
  stream <file>                                       Decode a constants stream written by skindemo
  mesh [-config file] [-vertices out] [-indices out]  Build the tube and dump its buffers
  texture [-config file] [-out file] [-scale N]       Export the checker texture (webp, png, tga)
  config [-format yaml|toml] [-out file]              Print or save the default config

Examples:
  dqtool weights -curve linear -n 21
  dqtool frames -n 5 -dt 0.1 -format yaml -deform
  dqtool texture -out tube.png -scale 4
  dqtool config -format toml -out dqskin.toml`)
}

func fail(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", a...)
	os.Exit(1)
}

func loadConfig(path string) *config.Config {
	cfg, err := config.LoadFile(path)
	if err != nil {
		fail("%v", err)
	}
	return cfg
}

func cmdWeights(args []string) {
	fs := flag.NewFlagSet("weights", flag.ExitOnError)
	curveName := fs.String("curve", "smoothstep", "Weight curve (smoothstep or linear)")
	halfWidth := fs.Float64("half-width", float64(skin.DefaultHalfWidth), "Blend half width around the tube midpoint")
	n := fs.Int("n", 11, "Number of samples along the tube")
	fs.Parse(args)

	if *n < 2 {
		fail("need at least 2 samples, got %d", *n)
	}
	curve, err := skin.ParseCurve(*curveName)
	if err != nil {
		fail("%v", err)
	}
	blend, err := skin.NewBlend(curve, float32(*halfWidth))
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("%-8s %-10s %-10s\n", "u", "bone0", "bone1")
	for i := range *n {
		u := float32(i) / float32(*n-1)
		w := blend.Weights(u)
		fmt.Printf("%-8.4f %-10.6f %-10.6f\n", u, w[0], w[1])
	}
}

type boundsReport struct {
	Min [3]float32 `yaml:"min"`
	Max [3]float32 `yaml:"max"`
}

type frameReport struct {
	Index      int           `yaml:"index"`
	Time       float32       `yaml:"time"`
	Bones      [][8]float32  `yaml:"bones"`
	Offsets    [][3]float32  `yaml:"translations"`
	Deformed   *boundsReport `yaml:"deformed_bounds,omitempty"`
	MaxStretch float32       `yaml:"max_bone_stretch,omitempty"`
}

func cmdFrames(args []string) {
	fs := flag.NewFlagSet("frames", flag.ExitOnError)
	configPath := fs.String("config", "", "Config file (.yaml or .toml)")
	t0 := fs.Float64("t0", 0, "Time of the first frame in seconds")
	dt := fs.Float64("dt", 1.0/60.0, "Time step in seconds")
	n := fs.Int("n", 10, "Number of frames")
	format := fs.String("format", "text", "Output format (text or yaml)")
	deform := fs.Bool("deform", false, "Skin the tube on the CPU and report its bounds")
	fs.Parse(args)

	cfg := loadConfig(*configPath)
	composer, err := animation.NewComposer(cfg.Animation)
	if err != nil {
		fail("%v", err)
	}

	var tube *mesh.Mesh
	var lines []mesh.FlatVertex
	if *deform {
		blend, err := cfg.Skin.Blend()
		if err != nil {
			fail("%v", err)
		}
		if tube, err = mesh.BuildTube(cfg.Tube, blend); err != nil {
			fail("%v", err)
		}
		if lines, err = mesh.BuildBoneLines(cfg.Tube.Bones, cfg.Tube.Height); err != nil {
			fail("%v", err)
		}
	}

	reports := make([]frameReport, 0, *n)
	for i, tc := range composer.Sample(float32(*t0), float32(*dt), *n) {
		r := frameReport{
			Index: i,
			Time:  float32(*t0) + float32(i)*float32(*dt),
		}
		for _, b := range tc.Bones {
			r.Bones = append(r.Bones, b.Array())
			p := b.Translation()
			r.Offsets = append(r.Offsets, [3]float32{p.X, p.Y, p.Z})
		}
		if tube != nil {
			b := mesh.DeformedBounds(tube.Deform(tc.Bones))
			r.Deformed = &boundsReport{
				Min: [3]float32{b.Min.X, b.Min.Y, b.Min.Z},
				Max: [3]float32{b.Max.X, b.Max.Y, b.Max.Z},
			}
			r.MaxStretch = boneStretch(lines, tc.Bones)
		}
		reports = append(reports, r)
	}

	switch *format {
	case "yaml":
		out, err := yaml.Marshal(reports)
		if err != nil {
			fail("%v", err)
		}
		os.Stdout.Write(out)
	case "text":
		for _, r := range reports {
			fmt.Printf("frame %d  t=%.4f\n", r.Index, r.Time)
			for b, dq := range r.Bones {
				fmt.Printf("  bone%d real=% .5f % .5f % .5f % .5f  dual=% .5f % .5f % .5f % .5f\n",
					b, dq[0], dq[1], dq[2], dq[3], dq[4], dq[5], dq[6], dq[7])
			}
			if r.Deformed != nil {
				fmt.Printf("  bounds min=%v max=%v  bone stretch=%.2e\n", r.Deformed.Min, r.Deformed.Max, r.MaxStretch)
			}
		}
	default:
		fail("unknown format %q", *format)
	}
}

// boneStretch is the largest change in bone segment length after skinning.
// Rigid bones keep it at rounding level.
func boneStretch(lines []mesh.FlatVertex, bones [2]math.DualQuat) float32 {
	moved := mesh.DeformBoneLines(lines, bones)
	var worst float32
	for i := 0; i+1 < len(lines); i += 2 {
		rest := lines[i].Position.Vec3().Distance(lines[i+1].Position.Vec3())
		now := moved[i].Distance(moved[i+1])
		worst = math.Max(worst, math.Abs(now-rest))
	}
	return worst
}

func cmdStream(args []string) {
	fs := flag.NewFlagSet("stream", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: dqtool stream <file>")
		os.Exit(1)
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fail("%v", err)
	}
	if len(data)%animation.ConstantsSize != 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d trailing bytes ignored\n", len(data)%animation.ConstantsSize)
	}

	frames := 0
	for off := 0; off+animation.ConstantsSize <= len(data); off += animation.ConstantsSize {
		tc, _ := animation.ConstantsFromBytes(data[off:])
		p0, p1 := tc.Bones[0].Translation(), tc.Bones[1].Translation()
		fmt.Printf("%6d  bone0 at (% .4f, % .4f, % .4f)  bone1 at (% .4f, % .4f, % .4f)\n",
			frames, p0.X, p0.Y, p0.Z, p1.X, p1.Y, p1.Z)
		frames++
	}
	fmt.Fprintf(os.Stderr, "\n(%d frames)\n", frames)
}

func cmdMesh(args []string) {
	fs := flag.NewFlagSet("mesh", flag.ExitOnError)
	configPath := fs.String("config", "", "Config file (.yaml or .toml)")
	verticesOut := fs.String("vertices", "", "Write the vertex buffer to this file")
	indicesOut := fs.String("indices", "", "Write the index buffer to this file")
	fs.Parse(args)

	cfg := loadConfig(*configPath)
	blend, err := cfg.Skin.Blend()
	if err != nil {
		fail("%v", err)
	}
	tube, err := mesh.BuildTube(cfg.Tube, blend)
	if err != nil {
		fail("%v", err)
	}

	fmt.Printf("Tube:      %d x %d segments, height %.3g, radius %.3g\n",
		cfg.Tube.AxialSegments, cfg.Tube.RadialSegments, cfg.Tube.Height, cfg.Tube.Radius)
	fmt.Printf("Vertices:  %d (%d bytes each)\n", len(tube.Vertices), mesh.VertexStride)
	fmt.Printf("Indices:   %d (%d triangles)\n", len(tube.Indices), tube.NumTriangles())
	fmt.Printf("Bounds:    min=%v max=%v\n", tube.Bounds.Min.Array(), tube.Bounds.Max.Array())
	fmt.Printf("Curve:     %s (half width %.3g)\n", blend.Curve, blend.HalfWidth)

	if *verticesOut != "" {
		data, err := tube.VertexBytes()
		if err != nil {
			fail("%v", err)
		}
		writeFile(*verticesOut, data)
	}
	if *indicesOut != "" {
		writeFile(*indicesOut, tube.IndexBytes())
	}
}

func writeFile(path string, data []byte) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		fail("creating directory: %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		fail("writing file: %v", err)
	}
	fmt.Printf("Wrote:     %s (%d bytes)\n", path, len(data))
}

func cmdTexture(args []string) {
	fs := flag.NewFlagSet("texture", flag.ExitOnError)
	configPath := fs.String("config", "", "Config file (.yaml or .toml)")
	out := fs.String("out", "", "Output file (default from config)")
	scale := fs.Int("scale", 0, "Nearest-neighbour upscale factor (default from config)")
	fs.Parse(args)

	cfg := loadConfig(*configPath)
	if *out == "" {
		*out = cfg.Texture.Output
	}
	if *scale == 0 {
		*scale = cfg.Texture.Scale
	}
	if *scale < 1 {
		fail("scale %d must be at least 1", *scale)
	}

	img, err := texture.Checker(cfg.Texture.Checker)
	if err != nil {
		fail("%v", err)
	}
	if *scale > 1 {
		img = texture.Upscale(img, *scale)
	}
	if err := texture.Save(*out, img); err != nil {
		fail("%v", err)
	}

	b := img.Bounds()
	fmt.Printf("Wrote:     %s (%dx%d)\n", *out, b.Dx(), b.Dy())
}

func cmdConfig(args []string) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	format := fs.String("format", "yaml", "Output format (yaml or toml)")
	out := fs.String("out", "", "Save to this file instead of printing")
	fs.Parse(args)

	cfg := config.Default()
	if *out != "" {
		if err := cfg.SaveTo(*out); err != nil {
			fail("%v", err)
		}
		fmt.Printf("Wrote:     %s\n", *out)
		return
	}

	data, err := config.Marshal(cfg, "config."+*format)
	if err != nil {
		fail("%v", err)
	}
	os.Stdout.Write(data)
}

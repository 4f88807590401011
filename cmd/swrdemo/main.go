// Command swrdemo renders a demonstration scene with the swr software
// rasterizer and writes it to a PNG file.
package main

import (
	"flag"
	"fmt"
	"image"
	stdcolor "image/color"
	"log/slog"
	"math"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/swr"
)

// Scene dimensions in scene units.
const (
	sceneWidth  = 800
	sceneHeight = 600
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		rate    = flag.Int("rate", 4, "samples per pixel side")
		output  = flag.String("output", "demo.png", "output file")
		texPath = flag.String("texture", "", "image file for the textured quad (default: generated checkerboard)")
		filter  = flag.String("filter", "bilinear", "texture filter: nearest, bilinear or trilinear")
		workers = flag.Int("workers", 0, "resolve workers (0 = GOMAXPROCS)")
		verbose = flag.Bool("verbose", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		swr.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(*width, *height, *rate, *workers, *output, *texPath, *filter); err != nil {
		fmt.Fprintf(os.Stderr, "swrdemo: %v\n", err)
		os.Exit(1)
	}
}

func run(width, height, rate, workers int, output, texPath, filterName string) error {
	f, err := swr.ParseFilter(filterName)
	if err != nil {
		return err
	}

	textures := swr.NewTextureCache(0)
	defer textures.Purge()

	tex, err := loadTexture(textures, texPath)
	if err != nil {
		return err
	}

	vp := swr.FitViewport(sceneWidth, sceneHeight)
	r, err := swr.NewRenderer(width, height,
		swr.WithSampleRate(rate),
		swr.WithWorkers(workers),
		swr.WithTextureFilter(f),
		swr.WithCanvasToScreen(vp.CanvasToScreen(width, height)),
	)
	if err != nil {
		return err
	}
	defer r.Close()

	img, err := r.RenderImage(demoScene(tex))
	if err != nil {
		return err
	}
	if err := swr.SavePNG(output, img); err != nil {
		return err
	}

	cs := textures.Stats()
	swr.Logger().Debug("swrdemo: texture cache",
		"len", cs.Len, "hits", cs.Hits, "misses", cs.Misses)

	s := r.Stats()
	p := message.NewPrinter(language.English)
	p.Printf("Rendered %d elements (%d triangles, %d lines, %d images) at %dx%d with %d samples per pixel in %v\n",
		s.Elements, s.Triangles, s.Lines, s.Images, width, height, rate*rate, s.Duration)
	p.Printf("Saved %s (%d bytes of pixels)\n", output, len(img.Pix))
	return nil
}

func loadTexture(textures *swr.TextureCache, path string) (*swr.Texture, error) {
	if path != "" {
		return textures.Load(path)
	}
	return swr.NewTexture(checkerboard(128, 16))
}

func checkerboard(size, cell int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	dark := stdcolor.NRGBA{R: 40, G: 40, B: 60, A: 255}
	light := stdcolor.NRGBA{R: 230, G: 220, B: 200, A: 255}
	for y := range size {
		for x := range size {
			c := light
			if (x/cell+y/cell)%2 == 1 {
				c = dark
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func demoScene(tex *swr.Texture) *swr.Scene {
	scene := &swr.Scene{Width: sceneWidth, Height: sceneHeight}

	scene.Elements = append(scene.Elements, background()...)
	scene.Elements = append(scene.Elements,
		shapes(),
		rotatedSquares(),
		star(),
		&swr.Image{Position: swr.V2(560, 360), Size: swr.V2(180, 180), Texture: tex},
	)
	return scene
}

func background() []swr.Element {
	const steps = 50
	var out []swr.Element
	for i := range steps {
		t := float64(i) / steps
		out = append(out, &swr.Rect{
			Position: swr.V2(0, sceneHeight*t),
			Size:     swr.V2(sceneWidth, sceneHeight/steps+1),
			Style:    swr.Style{Fill: swr.RGB(0.1+t*0.4, 0.2+t*0.3, 0.4+t*0.2)},
		})
	}
	return out
}

func shapes() swr.Element {
	gold, _ := swr.Named("gold")
	return &swr.Group{
		Elements: []swr.Element{
			&swr.Rect{
				Position: swr.V2(80, 80), Size: swr.V2(160, 110),
				Style: swr.Style{Fill: swr.RGBA(1, 0.3, 0.3, 0.8), Stroke: swr.White},
			},
			&swr.Rect{
				Position: swr.V2(140, 130), Size: swr.V2(160, 110),
				Style: swr.Style{Fill: swr.RGBA(0.3, 0.3, 1, 0.6)},
			},
			&swr.Polygon{
				Points: []swr.Vec2{{X: 350, Y: 220}, {X: 430, Y: 80}, {X: 510, Y: 220}},
				Style:  swr.Style{Fill: gold, Stroke: swr.Black},
			},
			&swr.Polyline{
				Points: []swr.Vec2{{X: 80, Y: 300}, {X: 160, Y: 260}, {X: 240, Y: 320}, {X: 320, Y: 270}, {X: 400, Y: 330}},
				Style:  swr.Style{Stroke: swr.Hex("#e0ffe0")},
			},
			&swr.Line{From: swr.V2(80, 350), To: swr.V2(400, 350), Style: swr.Style{Stroke: swr.White}},
			&swr.Point{Position: swr.V2(420, 350), Style: swr.Style{Fill: swr.White}},
			// Accepted but not rasterized.
			&swr.Ellipse{Center: swr.V2(650, 100), Radius: swr.V2(40, 20), Style: swr.Style{Fill: swr.White}},
		},
	}
}

func rotatedSquares() swr.Element {
	g := &swr.Group{Local: swr.Translate(650, 230)}
	for i := range 8 {
		angle := float64(i) * math.Pi / 8
		g.Elements = append(g.Elements, &swr.Rect{
			Local:    swr.Rotate(angle),
			Position: swr.V2(-40, -40),
			Size:     swr.V2(80, 80),
			Style:    swr.Style{Fill: swr.RGBA(float64(i)/8, 0.8, 1-float64(i)/8, 0.25)},
		})
	}
	return g
}

// star builds a concave five-pointed star with an explicit triangulation
// fanned from its center.
func star() swr.Element {
	const (
		points = 5
		outerR = 90.0
		innerR = 40.0
	)

	outline := make([]swr.Vec2, 0, 2*points)
	for i := range 2 * points {
		angle := float64(i)*math.Pi/points - math.Pi/2
		r := outerR
		if i%2 == 1 {
			r = innerR
		}
		outline = append(outline, swr.V2(r*math.Cos(angle), r*math.Sin(angle)))
	}

	tris := make([]swr.Vec2, 0, 3*len(outline))
	for i := range outline {
		tris = append(tris, swr.V2(0, 0), outline[i], outline[(i+1)%len(outline)])
	}

	return &swr.Polygon{
		Local:     swr.Translate(300, 470).Multiply(swr.Scale(1.2, 1)),
		Points:    outline,
		Triangles: tris,
		Style:     swr.Style{Fill: swr.RGB(1, 0.85, 0.1), Stroke: swr.RGB(0.5, 0.3, 0)},
	}
}

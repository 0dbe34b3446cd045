// Command temindex indexes pairs of lattice planes from
// electron-diffraction measurements: given a crystal system, two
// measured ring spacings (or their ratio) and an angle threshold, it
// prints every candidate plane pair with its zone axis.
//
// The defaults reproduce the reference query: an FCC crystal, order 8,
// rings at 28.93 and 11.11, planes within 66°.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/GKarbon/crystal-index/imagemark"
	"github.com/GKarbon/crystal-index/lattice"
	"github.com/GKarbon/crystal-index/match"
	"github.com/GKarbon/crystal-index/report"
)

var (
	systemFlag  = flag.String("system", "FCC", "crystal system: SC, BCC or FCC")
	orderFlag   = flag.Int("order", 8, "number of lattice planes to consider")
	ratioFlag   = flag.Float64("ratio", 0, "target d-spacing ratio (overrides -d1/-d2 when set)")
	d1Flag      = flag.Float64("d1", 28.93, "first measured ring spacing")
	d2Flag      = flag.Float64("d2", 11.11, "second measured ring spacing")
	angleFlag   = flag.Float64("angle", 66, "angle threshold in degrees")
	workersFlag = flag.Int("workers", 0, "orbit-scan workers (0 = serial)")
	chartFlag   = flag.String("chart", "", "write an HTML scatter of the matches to this file")
	imageFlag   = flag.String("image", "", "diffraction image to mark")
	pointsFlag  = flag.String("points", "", "comma-separated x:y pixel points to mark on -image")
)

func main() {
	flag.Parse()

	sys, err := lattice.ParseSystem(*systemFlag)
	if err != nil {
		log.Fatalf("invalid -system: %v", err)
	}

	ratio := *ratioFlag
	if ratio == 0 {
		ratio, err = match.RatioFromSpacings(*d1Flag, *d2Flag)
		if err != nil {
			log.Fatalf("invalid -d1/-d2: %v", err)
		}
	}

	if *imageFlag != "" {
		markImage(*imageFlag, *pointsFlag)
	}

	lat, err := lattice.New(sys, *orderFlag)
	if err != nil {
		log.Fatalf("failed to build %s lattice: %v", sys, err)
	}

	matches, err := match.Find(lat, ratio, *angleFlag, match.WithWorkers(*workersFlag))
	if err != nil {
		log.Fatalf("pair matching failed: %v", err)
	}

	if err := report.Text(os.Stdout, matches); err != nil {
		log.Fatalf("failed to write report: %v", err)
	}
	if len(matches) == 0 {
		log.Printf("no %s plane pairs match ratio %.4f within %.1f°", sys, ratio, *angleFlag)
	}

	if *chartFlag != "" {
		writeChart(*chartFlag, matches, sys, ratio)
	}
}

// markImage runs the image-marking collaborator: select the image and
// record the supplied points. The coordinates are collected for a
// future calibration pipeline; the matcher does not consume them yet.
func markImage(path, pointSpec string) {
	marker, err := imagemark.Select(path)
	if err != nil {
		log.Fatalf("failed to select image: %v", err)
	}

	points, err := parsePoints(pointSpec)
	if err != nil {
		log.Fatalf("invalid -points: %v", err)
	}
	for _, p := range points {
		if err := marker.Mark(p.X, p.Y); err != nil {
			log.Fatalf("failed to mark point: %v", err)
		}
	}

	imagePath, marked := marker.Run()
	log.Printf("marked %d point(s) on %s (not used for calibration yet)", len(marked), imagePath)
}

// parsePoints parses a "x:y,x:y,..." flag value into points. An empty
// value yields no points.
func parsePoints(raw string) ([]imagemark.Point, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var points []imagemark.Point
	for _, field := range strings.Split(raw, ",") {
		xy := strings.Split(strings.TrimSpace(field), ":")
		if len(xy) != 2 {
			return nil, fmt.Errorf("point %q: want x:y", field)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xy[0]))
		if err != nil {
			return nil, fmt.Errorf("point %q: %v", field, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(xy[1]))
		if err != nil {
			return nil, fmt.Errorf("point %q: %v", field, err)
		}
		points = append(points, imagemark.Point{X: x, Y: y})
	}

	return points, nil
}

// writeChart renders the HTML scatter next to the text report.
func writeChart(path string, matches []match.Match, sys lattice.System, ratio float64) {
	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("failed to create chart file: %v", err)
	}
	defer f.Close()

	title := fmt.Sprintf("%s matches for d-ratio %.4f", sys, ratio)
	if err := report.Chart(f, matches, title); err != nil {
		log.Fatalf("failed to render chart: %v", err)
	}
	log.Printf("wrote chart to %s", path)
}

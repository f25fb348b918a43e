// Command dct computes the orthonormal Type-II DCT of a real sequence
// and prints the input points and the resulting coefficients.
//
// The sequence is given as a single comma-separated argument:
//
//	dct -1,2,3,6,-3,-2,0,3
//
// Without an argument a built-in demo sequence is used. Display
// precision comes from DCT_PRECISION (significant digits, default 6);
// the library itself does no formatting.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/ypk/dct"
	"github.com/ypk/dct/internal/config"
)

var demoPoints = []float64{-1.0, 2.0, 3.0, 6.0, -3.0, -2.0, 0.0, 3.0}

func main() {
	cfg := config.Load()

	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	points := demoPoints
	if len(os.Args) > 1 {
		var err error
		points, err = parsePoints(os.Args[1])
		if err != nil {
			slog.Error("parse points", "error", err)
			os.Exit(2)
		}
	}

	coeffs, err := dct.Transform(points)
	if err != nil {
		slog.Error("transform", "error", err)
		os.Exit(1)
	}

	fmt.Println("Points: " + formatSeq(points, cfg.Precision))
	fmt.Println("DCT: " + formatSeq(coeffs, cfg.Precision))
}

func parsePoints(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	points := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("point %q: %w", f, err)
		}
		points = append(points, v)
	}
	return points, nil
}

func formatSeq(xs []float64, precision int) string {
	parts := make([]string, len(xs))
	for i, v := range xs {
		parts[i] = strconv.FormatFloat(v, 'g', precision, 64)
	}
	return strings.Join(parts, ",")
}

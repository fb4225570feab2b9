package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/okian/veloplot/internal/adapters/render"
)

const fixture = `[
  {"Time":"36:50","Place":1,"Seconds":2210,"Name":"Marco Pantani","Year":1995,"Nationality":"ITA","Doping":"Alleged drug use during 1995 due to high hematocrit levels"},
  {"Time":"39:23","Place":35,"Seconds":2363,"Name":"Nairo Quintana","Year":2015,"Nationality":"COL","Doping":""},
  {"Time":"oops","Name":"Broken","Year":2015}
]`

func TestParseFormats(t *testing.T) {
	convey.Convey("Given a format list", t, func() {
		convey.Convey("When it is valid", func() {
			got, err := parseFormats("svg, PNG,svg,,json")
			convey.So(err, convey.ShouldBeNil)
			convey.So(got, convey.ShouldResemble, []render.Format{render.FormatSVG, render.FormatPNG, render.FormatJSON})
		})

		convey.Convey("When it names an unknown format", func() {
			_, err := parseFormats("svg,gif")
			convey.So(errors.Is(err, render.ErrUnknownFormat), convey.ShouldBeTrue)
		})

		convey.Convey("When it is empty", func() {
			_, err := parseFormats(" , ")
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}

func TestOutputName(t *testing.T) {
	convey.Convey("Given every format", t, func() {
		convey.So(outputName(render.FormatSVG), convey.ShouldEqual, "chart.svg")
		convey.So(outputName(render.FormatPNG), convey.ShouldEqual, "chart.png")
		convey.So(outputName(render.FormatHTML), convey.ShouldEqual, "index.html")
		convey.So(outputName(render.FormatJSON), convey.ShouldEqual, "dataset.json")
		convey.So(outputName(render.FormatYAML), convey.ShouldEqual, "dataset.yaml")
	})
}

func TestRun(t *testing.T) {
	convey.Convey("Given a dataset file", t, func() {
		dir := t.TempDir()
		in := filepath.Join(dir, "cyclists.json")
		convey.So(os.WriteFile(in, []byte(fixture), 0o600), convey.ShouldBeNil)
		out := filepath.Join(dir, "out")

		convey.Convey("When running the command", func() {
			err := newCommand().Run(context.Background(), []string{"render", "--file", in, "--out", out, "--log-level", "error"})

			convey.Convey("Then every output should be written", func() {
				convey.So(err, convey.ShouldBeNil)
				for _, name := range []string{"chart.svg", "chart.png", "index.html", "dataset.json", "dataset.yaml"} {
					info, statErr := os.Stat(filepath.Join(out, name))
					convey.So(statErr, convey.ShouldBeNil)
					convey.So(info.Size(), convey.ShouldBeGreaterThan, 0)
				}
				entries, _ := os.ReadDir(out)
				convey.So(len(entries), convey.ShouldEqual, 5)
			})
		})

		convey.Convey("When selecting a subset of formats", func() {
			err := newCommand().Run(context.Background(), []string{"render", "-f", in, "-o", out, "--formats", "svg", "--log-level", "error"})
			convey.So(err, convey.ShouldBeNil)
			entries, _ := os.ReadDir(out)
			convey.So(len(entries), convey.ShouldEqual, 1)
		})

		convey.Convey("When a subtitle is given", func() {
			err := newCommand().Run(context.Background(), []string{"render", "-f", in, "-o", out, "--formats", "html", "--subtitle", "Climbs of 2015", "--log-level", "error"})
			convey.So(err, convey.ShouldBeNil)
			page, readErr := os.ReadFile(filepath.Join(out, "index.html"))
			convey.So(readErr, convey.ShouldBeNil)
			convey.So(string(page), convey.ShouldContainSubstring, "Climbs of 2015")
		})

		convey.Convey("When the dataset file is missing", func() {
			err := newCommand().Run(context.Background(), []string{"render", "--file", filepath.Join(dir, "nope.json"), "--out", out, "--log-level", "error"})
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}

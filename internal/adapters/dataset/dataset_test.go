package dataset

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/veloplot/internal/domain/chart"
)

const sample = `[
  {"Time":"36:50","Place":1,"Seconds":2210,"Name":"Marco Pantani","Year":1995,"Nationality":"ITA","Doping":"Alleged drug use during 1995 due to high hematocrit levels","URL":""},
  {"Time":"37:15","Place":3,"Seconds":2235,"Name":"Lance Armstrong","Year":"2004","Nationality":"USA","Doping":""}
]`

func TestHTTPSource(t *testing.T) {
	Convey("Given an HTTP dataset source", t, func() {
		Convey("When the server returns the dataset", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(sample))
			}))
			defer srv.Close()

			src := NewHTTPSource(srv.URL, WithTimeout(time.Second))
			records, err := src.Load(context.Background())

			Convey("Then every record should decode in order", func() {
				So(err, ShouldBeNil)
				So(len(records), ShouldEqual, 2)
				So(records[0].Name, ShouldEqual, "Marco Pantani")
				So(string(records[0].Year), ShouldEqual, "1995")
				So(string(records[1].Year), ShouldEqual, "2004")
				So(src.Kind(), ShouldEqual, KindHTTP)
				So(src.Location(), ShouldEqual, srv.URL)
			})
		})

		Convey("When the server returns an error status", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "gone", http.StatusNotFound)
			}))
			defer srv.Close()

			_, err := NewHTTPSource(srv.URL).Load(context.Background())
			So(errors.Is(err, ErrStatus), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "404")
		})

		Convey("When the body is not a JSON array", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"Time":"36:50"}`))
			}))
			defer srv.Close()

			_, err := NewHTTPSource(srv.URL).Load(context.Background())
			So(errors.Is(err, ErrDecode), ShouldBeTrue)
		})

		Convey("When the body is null", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`null`))
			}))
			defer srv.Close()

			_, err := NewHTTPSource(srv.URL).Load(context.Background())
			So(errors.Is(err, ErrDecode), ShouldBeTrue)
		})

		Convey("When the server cannot be reached", func() {
			srv := httptest.NewServer(http.NotFoundHandler())
			url := srv.URL
			srv.Close()

			_, err := NewHTTPSource(url).Load(context.Background())
			So(errors.Is(err, ErrFetch), ShouldBeTrue)
		})

		Convey("When the context is cancelled", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(sample))
			}))
			defer srv.Close()

			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := NewHTTPSource(srv.URL).Load(ctx)
			So(errors.Is(err, ErrFetch), ShouldBeTrue)
		})
	})
}

func TestFileSource(t *testing.T) {
	Convey("Given a dataset file", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "cyclists.json")
		So(os.WriteFile(path, []byte(sample), 0o600), ShouldBeNil)

		Convey("When loading it", func() {
			src := NewFileSource(path, nil)
			records, err := src.Load(context.Background())

			Convey("Then it should decode like the HTTP source", func() {
				So(err, ShouldBeNil)
				So(len(records), ShouldEqual, 2)
				So(records[1].Name, ShouldEqual, "Lance Armstrong")
				So(src.Kind(), ShouldEqual, KindFile)
			})
		})

		Convey("When rows carry wrongly typed fields", func() {
			mixed := `[
  {"Time":"36:50","Name":"Marco Pantani","Year":1995,"Nationality":"ITA","Doping":"Alleged"},
  {"Time":2210,"Name":"Numeric Time","Year":1996,"Nationality":"FRA","Doping":""},
  {"Time":"37:15","Name":"Boolean Year","Year":true,"Nationality":"USA","Doping":""},
  {"Time":"37:15","Name":"Lance Armstrong","Year":"2004","Nationality":"USA","Doping":""}
]`
			So(os.WriteFile(path, []byte(mixed), 0o600), ShouldBeNil)
			records, err := NewFileSource(path, nil).Load(context.Background())

			Convey("Then the payload should still load", func() {
				So(err, ShouldBeNil)
				So(len(records), ShouldEqual, 4)
				So(records[1].Name, ShouldEqual, "Numeric Time")
			})

			Convey("And only the bad rows should be rejected", func() {
				ds := chart.Transform(records)
				So(len(ds.Records), ShouldEqual, 2)
				So(ds.Records[0].Name, ShouldEqual, "Marco Pantani")
				So(ds.Records[1].Name, ShouldEqual, "Lance Armstrong")
				So(len(ds.Rejected), ShouldEqual, 2)
				So(ds.Rejected[0].Index, ShouldEqual, 1)
				So(ds.Rejected[0].Reason, ShouldContainSubstring, "Time")
				So(ds.Rejected[1].Index, ShouldEqual, 2)
				So(ds.Rejected[1].Reason, ShouldContainSubstring, "year")

				c, err := chart.Render(ds)
				So(err, ShouldBeNil)
				So(len(c.Marks), ShouldEqual, 2)
			})
		})

		Convey("When the file is missing", func() {
			_, err := NewFileSource(filepath.Join(dir, "missing.json"), nil).Load(context.Background())
			So(errors.Is(err, ErrRead), ShouldBeTrue)
		})

		Convey("When the file is rewritten while watched", func() {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			changed := make(chan struct{}, 1)
			done := make(chan error, 1)
			src := NewFileSource(path, nil)
			go func() {
				done <- src.Watch(ctx, func() {
					select {
					case changed <- struct{}{}:
					default:
					}
				})
			}()

			// Give the watcher time to register the directory.
			time.Sleep(100 * time.Millisecond)
			So(os.WriteFile(path, []byte(`[]`), 0o600), ShouldBeNil)

			var fired bool
			select {
			case <-changed:
				fired = true
			case <-time.After(3 * time.Second):
			}
			So(fired, ShouldBeTrue)

			cancel()
			So(<-done, ShouldBeNil)
		})
	})
}

func TestResultLabel(t *testing.T) {
	Convey("Given load errors", t, func() {
		So(resultLabel(nil), ShouldEqual, "success")
		So(resultLabel(ErrStatus), ShouldEqual, "status")
		So(resultLabel(ErrDecode), ShouldEqual, "decode")
		So(resultLabel(ErrRead), ShouldEqual, "read")
		So(resultLabel(ErrFetch), ShouldEqual, "fetch")
	})
}

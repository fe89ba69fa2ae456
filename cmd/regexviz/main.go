package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"regexnfa/internal/manifest"
	"regexnfa/internal/regexlib"
	"regexnfa/internal/report"
)

type job struct {
	name    string
	pattern string
	trace   *regexlib.Trace
	err     error
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("regexviz: ")

	pattern := flag.String("re", "", "pattern to compile")
	file := flag.String("f", "", "manifest of named patterns (name = \"pattern\";)")
	format := flag.String("format", "table", "output format: table, dot, yaml or json")
	outFile := flag.String("o", "-", "output file")
	steps := flag.Bool("steps", false, "print the desugared and postfix forms (table format)")
	flag.Parse()

	if (*pattern == "") == (*file == "") {
		fmt.Fprintln(os.Stderr, "usage: regexviz (-re <pattern> | -f <manifest>) [-format table|dot|yaml|json] [-o file] [-steps]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	var jobs []*job
	if *file != "" {
		m, err := manifest.Load(*file)
		if err != nil {
			log.Fatal(err)
		}
		for _, e := range m.Entries {
			jobs = append(jobs, &job{name: e.Name, pattern: e.Pattern})
		}
	} else {
		jobs = append(jobs, &job{pattern: *pattern})
	}

	// every pattern compiles independently
	var wg sync.WaitGroup
	for _, j := range jobs {
		wg.Add(1)
		go func(j *job) {
			defer wg.Done()
			j.trace, j.err = regexlib.Stages(j.pattern)
		}(j)
	}
	wg.Wait()

	failed := false
	for _, j := range jobs {
		if j.err != nil {
			failed = true
			log.Printf("%s: %v", j.label(), j.err)
		}
	}

	var buf bytes.Buffer
	if err := render(&buf, *format, jobs, *steps); err != nil {
		log.Fatal(err)
	}

	var w io.Writer
	if *outFile == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(*outFile)
		if err != nil {
			log.Fatalf("cannot create %s: %v", *outFile, err)
		}
		defer f.Close()
		w = f
	}
	if _, err := io.Copy(w, &buf); err != nil {
		log.Fatal(err)
	}
	if *outFile != "-" {
		log.Printf("%s written to %s", *format, *outFile)
	}
	if failed {
		os.Exit(1)
	}
}

func (j *job) label() string {
	if j.name != "" {
		return j.name
	}
	return fmt.Sprintf("%q", j.pattern)
}

func render(w io.Writer, format string, jobs []*job, steps bool) error {
	switch format {
	case "table":
		for i, j := range jobs {
			if j.err != nil {
				continue
			}
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "== %s\n", j.label())
			if steps {
				fmt.Fprintf(w, "desugared: %s\npostfix:   %s\n", j.trace.Desugared, j.trace.Postfix)
			}
			if err := report.NewTable(j.trace.NFA).WriteText(w); err != nil {
				return err
			}
		}
	case "dot":
		for _, j := range jobs {
			if j.err != nil {
				continue
			}
			if err := regexlib.ExportDOT(w, j.trace.NFA, j.label()); err != nil {
				return err
			}
		}
	case "yaml", "json":
		docs := make([]report.Document, 0, len(jobs))
		for _, j := range jobs {
			docs = append(docs, report.NewDocument(j.name, j.trace, j.err))
		}
		marshal := report.MarshalYAML
		if format == "json" {
			marshal = report.MarshalJSON
		}
		out, err := marshal(docs)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/docfind/internal/decode"
	"github.com/kk-code-lab/docfind/internal/find"
	"github.com/kk-code-lab/docfind/internal/ui/viewer"
)

func printHelp() {
	fmt.Print(`docfind - search a paginated text document in the terminal

USAGE:
    docfind [OPTIONS] FILE

OPTIONS:
    -lines N    Lines per page when the file has no form-feed breaks (default 40)
    -h          Show this help message and exit

KEYS:
    /           Search (type to update live, Enter to submit, Esc to clear)
    n / N       Next / previous match
    PgUp/PgDn   Page backward / forward
    g / G       First / last page
    q           Quit
`)
}

func main() {
	// UTF-8 fallback keeps non-ASCII documents readable on odd locales.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	linesPerPage := flag.Int("lines", decode.DefaultLinesPerPage, "lines per page")
	help := flag.Bool("h", false, "show help")
	flag.Usage = printHelp
	flag.Parse()

	if *help {
		printHelp()
		os.Exit(0)
	}
	if flag.NArg() != 1 {
		printHelp()
		os.Exit(2)
	}

	doc, err := decode.Open(flag.Arg(0), *linesPerPage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "docfind: %v\n", err)
		os.Exit(1)
	}

	ctrl := find.NewController()
	ctrl.AttachDocument(doc)

	view, err := viewer.New(ctrl, doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "docfind: %v\n", err)
		os.Exit(1)
	}
	if err := view.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "docfind: %v\n", err)
		os.Exit(1)
	}
}

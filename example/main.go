package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	bm "github.com/pthm/blockmarkup"
	"github.com/pthm/blockmarkup/blocks"
	"github.com/pthm/blockmarkup/lib/minify"
)

func page(logger *zap.Logger) bm.Renderable {
	hero := blocks.NewGroupWith([]bm.Renderable{
		blocks.NewHeading("Block markup from <em>Go</em>", 1).AutoAnchor().TextTransform("uppercase"),
		blocks.NewParagraph("Every block is rendered with its editor comments.").DropCap(),
	}, []bm.Option{bm.WithLogger(logger)}).
		LayoutConstrained().
		ContentSize("640px").
		TagName("section").
		BackgroundColor("base").
		AlignFull()

	features := blocks.NewGroupRow(blocks.RowConfig{Wrap: true, JustifyContent: "space-between"},
		blocks.NewParagraph("Typed mixins").Grow(),
		blocks.NewParagraph("Streaming output").Grow(),
		blocks.NewParagraph("No runtime required").Grow(),
	).TextColor("contrast")

	return bm.Fragment(hero, bm.Text("\n\n"), blocks.NewSeparator().AlignWide(), bm.Text("\n\n"), features)
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	mux := http.NewServeMux()

	// Page rendered through templ
	mux.Handle("/", templ.Handler(bm.Component(page(logger))))

	// Minified markup, as it would be stored by the editor
	mux.HandleFunc("/markup", func(w http.ResponseWriter, r *http.Request) {
		out, err := bm.ProcessRenderable(page(logger), minify.Default(), logger)
		if err != nil {
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprint(w, out)
	})

	addr := ":8080"
	logger.Info("Starting server", zap.String("url", "http://localhost"+addr))
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/whittle/pkg/glyph"
)

type Key struct{}

func (k *Key) Do(ctx context.Context) error {
	k.Key(ctx, glyph.DefaultKinds(), "Kinds")
	k.Key(ctx, glyph.DefaultTimings(), "Timings")

	return nil
}

func (k *Key) Key(ctx context.Context, glyfs []glyph.Glyph, title string) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(glyph.Bold("Key"), glyph.Bold("Symbol"), glyph.Bold("Meaning"))
	for _, v := range glyfs {
		tbl.AddRow(v.Key, v.Symbol, v.Meaning)
	}

	_, _ = fmt.Fprintln(color.Output, glyph.Bold(glyph.Underline("\n"+title)))
	_, _ = fmt.Fprintln(color.Output, tbl)
}

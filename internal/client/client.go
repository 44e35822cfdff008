package client

import (
	"fmt"
	"io"
	"os"

	"github.com/nic1611/furnctl/internal/models"
	"github.com/nic1611/furnctl/pkg/furniture"
)

var ordinals = []string{"first", "second", "third", "fourth", "fifth"}

// Client works with factories and products only through the furniture
// interfaces, so any factory can be passed in without changing it.
type Client struct {
	out     io.Writer
	narrate bool
}

type Option func(*Client)

// WithNarration prints a header before each factory is exercised.
func WithNarration() Option {
	return func(c *Client) {
		c.narrate = true
	}
}

// New creates a client writing to out. A nil writer defaults to os.Stdout.
func New(out io.Writer, opts ...Option) *Client {
	if out == nil {
		out = os.Stdout
	}
	c := &Client{out: out}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run creates a chair and a table from f and prints what the table does on
// its own and together with the chair. The printed lines are returned.
func (c *Client) Run(f furniture.Factory) []string {
	chair := f.CreateChair()
	table := f.CreateTable()

	lines := []string{
		table.Describe(),
		table.Collaborate(chair),
	}
	for _, line := range lines {
		fmt.Fprintln(c.out, line)
	}
	return lines
}

// Demo runs every factory in order.
func (c *Client) Demo(factories ...furniture.Factory) []string {
	var lines []string
	for i, f := range factories {
		if c.narrate {
			if i > 0 {
				fmt.Fprintln(c.out)
			}
			fmt.Fprintln(c.out, header(i))
		}
		lines = append(lines, c.Run(f)...)
	}
	return lines
}

// Lines exercises f like Run without printing and tags each line with the
// factory's variant.
func Lines(f furniture.Factory) []models.DemoLine {
	v, _ := furniture.VariantOf(f)
	chair := f.CreateChair()
	table := f.CreateTable()
	return []models.DemoLine{
		{Variant: string(v), Kind: "describe", Text: table.Describe()},
		{Variant: string(v), Kind: "collaborate", Text: table.Collaborate(chair)},
	}
}

func header(i int) string {
	if i == 0 {
		return "Client: Testing client code with the first factory type..."
	}
	ord := fmt.Sprintf("#%d", i+1)
	if i < len(ordinals) {
		ord = ordinals[i]
	}
	return fmt.Sprintf("Client: Testing the same client code with the %s factory type...", ord)
}

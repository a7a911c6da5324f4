// Command etcinfo inspects PKM and KTX compressed-texture files.
package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/cespare/xxhash/v2"
	"github.com/dustin/go-humanize"
	"github.com/zeebo/blake3"

	"github.com/woozymasta/etcheader"
	"github.com/woozymasta/etcheader/internal/logging"
)

const version = "0.1.0"

// Globals are flags shared by every command.
type Globals struct {
	LogLevel  string `name:"log-level" default:"warn" enum:"debug,info,warn,error" help:"Log level (${enum})"`
	LogFormat string `name:"log-format" default:"text" enum:"text,json" help:"Log format (${enum})"`
	Raw       bool   `help:"Do not unwrap LZ4, xz or zstd compressed files"`
	MaxSize   int64  `name:"max-size" default:"268435456" help:"Reject payloads larger than this many bytes (0 = no limit)"`
}

func (g *Globals) readOptions() *etcheader.ReadOptions {
	return &etcheader.ReadOptions{Raw: g.Raw, MaxPayloadSize: g.MaxSize}
}

// CLI defines the command-line interface for etcinfo.
var CLI struct {
	Globals

	Info    InfoCmd    `cmd:"" help:"Print header information"`
	Payload PayloadCmd `cmd:"" help:"Write the raw compressed payload to a file"`
	Hash    HashCmd    `cmd:"" help:"Fingerprint the compressed payload"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// InfoCmd prints decoded headers.
type InfoCmd struct {
	Files []string `arg:"" help:"Texture files" type:"existingfile"`
	JSON  bool     `help:"Print JSON lines instead of text"`
}

// Run decodes every file; it reports all failures after processing the rest.
func (c *InfoCmd) Run(g *Globals) error {
	var errs []error
	for _, path := range c.Files {
		h, err := etcheader.ReadConfigWithOptions(path, g.readOptions())
		if err != nil {
			slog.Warn("header not usable", "path", path, "err", err)
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		slog.Debug("decoded header", "path", path, "container", h.Container().String(), "format", h.Format().String())

		if err := writeInfo(os.Stdout, newInfoRecord(path, h), c.JSON); err != nil {
			return err
		}
	}

	return errors.Join(errs...)
}

// PayloadCmd extracts level 0 compressed data.
type PayloadCmd struct {
	File   string `arg:"" help:"Texture file" type:"existingfile"`
	Output string `short:"o" required:"" help:"Output file" type:"path"`
}

// Run writes the payload of c.File to c.Output.
func (c *PayloadCmd) Run(g *Globals) error {
	h, payload, err := etcheader.ReadPayloadWithOptions(c.File, g.readOptions())
	if err != nil {
		return fmt.Errorf("%s: %w", c.File, err)
	}

	if err := os.WriteFile(c.Output, payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", c.Output, err)
	}
	slog.Info("payload written", "path", c.Output, "format", h.Format().String(), "bytes", len(payload))

	return nil
}

// HashCmd fingerprints payloads so identical textures can be deduplicated.
type HashCmd struct {
	Files []string `arg:"" help:"Texture files" type:"existingfile"`
	Algo  string   `default:"blake3" enum:"blake3,xxhash" help:"Hash algorithm (${enum})"`
}

// Run prints "<hash>  <path>" per file.
func (c *HashCmd) Run(g *Globals) error {
	var errs []error
	for _, path := range c.Files {
		_, payload, err := etcheader.ReadPayloadWithOptions(path, g.readOptions())
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		fmt.Printf("%s  %s\n", payloadHash(c.Algo, payload), path)
	}

	return errors.Join(errs...)
}

// VersionCmd prints the version.
type VersionCmd struct{}

// Run prints the version.
func (c *VersionCmd) Run() error {
	fmt.Printf("etcinfo version %s\n", version)
	return nil
}

// infoRecord is the printable form of a header.
type infoRecord struct {
	Path          string `json:"path"`
	Container     string `json:"container"`
	Format        string `json:"format"`
	GLEnum        string `json:"gl_enum"`
	Width         uint32 `json:"width"`
	Height        uint32 `json:"height"`
	PaddedWidth   uint32 `json:"padded_width"`
	PaddedHeight  uint32 `json:"padded_height"`
	PayloadOffset uint64 `json:"payload_offset"`
	PayloadSize   int64  `json:"payload_size"`
}

func newInfoRecord(path string, h etcheader.Header) infoRecord {
	return infoRecord{
		Path:          path,
		Container:     h.Container().String(),
		Format:        h.Format().String(),
		GLEnum:        "0x" + strconv.FormatUint(uint64(h.Format()), 16),
		Width:         h.Width(),
		Height:        h.Height(),
		PaddedWidth:   h.PaddedWidth(),
		PaddedHeight:  h.PaddedHeight(),
		PayloadOffset: h.PayloadOffset(),
		PayloadSize:   h.PayloadSize(),
	}
}

func writeInfo(w io.Writer, rec infoRecord, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(w).Encode(rec)
	}

	size := "n/a"
	if rec.PayloadSize >= 0 {
		size = humanize.IBytes(uint64(rec.PayloadSize))
	}
	_, err := fmt.Fprintf(w, "%s: %s %s (%s) %dx%d padded %dx%d, payload %s at offset %s\n",
		rec.Path, rec.Container, rec.Format, rec.GLEnum,
		rec.Width, rec.Height, rec.PaddedWidth, rec.PaddedHeight,
		size, humanize.Comma(int64(rec.PayloadOffset)))
	return err
}

func payloadHash(algo string, data []byte) string {
	if algo == "xxhash" {
		return fmt.Sprintf("%016x", xxhash.Sum64(data))
	}

	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("etcinfo"),
		kong.Description("Inspect ETC1/ETC2/EAC PKM and KTX texture headers"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)

	level, err := logging.ParseLevel(CLI.LogLevel)
	ctx.FatalIfErrorf(err)
	format, err := logging.ParseFormat(CLI.LogFormat)
	ctx.FatalIfErrorf(err)
	logging.New(os.Stderr, level, format)

	err = ctx.Run(&CLI.Globals)
	ctx.FatalIfErrorf(err)
}

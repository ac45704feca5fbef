package removebg

import (
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"slices"
	"strconv"
)

type BackgroundType string

const (
	BackgroundPath  BackgroundType = "path"
	BackgroundURL   BackgroundType = "url"
	BackgroundColor BackgroundType = "color"
)

type Options struct {
	Size      string
	Type      string
	TypeLevel string
	Format    string

	ROI        string
	CropMargin *string

	Scale    string
	Position string
	Channels string

	Shadow           *bool
	Semitransparency *bool

	Background     string
	BackgroundType BackgroundType

	OutputFile string
}

// DefaultOptions returns the values sent when a field is left unset. Every
// field is transmitted explicitly, so these defaults apply regardless of the
// service-side ones.
func DefaultOptions() *Options {
	return &Options{
		Size:      "regular",
		Type:      "auto",
		TypeLevel: "none",
		Format:    "auto",

		ROI: "0 0 100% 100%",

		Scale:    "original",
		Position: "original",
		Channels: "rgba",

		Shadow:           Ptr(false),
		Semitransparency: Ptr(true),

		OutputFile: "no-bg.png",
	}
}

func Ptr[T any](v T) *T {
	return &v
}

func resolveOptions(options *Options) (*Options, error) {
	opts := DefaultOptions()

	if options == nil {
		options = new(Options)
	}

	if options.Size != "" {
		opts.Size = options.Size
	}

	if options.Type != "" {
		opts.Type = options.Type
	}

	if options.TypeLevel != "" {
		opts.TypeLevel = options.TypeLevel
	}

	if options.Format != "" {
		opts.Format = options.Format
	}

	if options.ROI != "" {
		opts.ROI = options.ROI
	}

	if options.CropMargin != nil {
		opts.CropMargin = options.CropMargin
	}

	if options.Scale != "" {
		opts.Scale = options.Scale
	}

	if options.Position != "" {
		opts.Position = options.Position
	}

	if options.Channels != "" {
		opts.Channels = options.Channels
	}

	if options.Shadow != nil {
		opts.Shadow = options.Shadow
	}

	if options.Semitransparency != nil {
		opts.Semitransparency = options.Semitransparency
	}

	opts.Background = options.Background
	opts.BackgroundType = options.BackgroundType

	if options.OutputFile != "" {
		opts.OutputFile = options.OutputFile
	}

	if err := opts.validate(); err != nil {
		return nil, err
	}

	return opts, nil
}

func (o *Options) validate() error {
	if !slices.Contains(SupportedChannels, o.Channels) {
		return errors.New("invalid channels: " + o.Channels)
	}

	if (o.Background == "") != (o.BackgroundType == "") {
		return errors.New("background and background type must be set together")
	}

	if o.BackgroundType != "" && !slices.Contains(SupportedBackgroundTypes, o.BackgroundType) {
		return errors.New("invalid background type: " + string(o.BackgroundType))
	}

	return nil
}

func (o *Options) encode(w *multipart.Writer) error {
	w.WriteField("size", o.Size)
	w.WriteField("type", o.Type)
	w.WriteField("type_level", o.TypeLevel)
	w.WriteField("format", o.Format)
	w.WriteField("roi", o.ROI)

	if o.CropMargin != nil {
		w.WriteField("crop", "true")
		w.WriteField("crop_margin", *o.CropMargin)
	}

	w.WriteField("scale", o.Scale)
	w.WriteField("position", o.Position)
	w.WriteField("channels", o.Channels)
	w.WriteField("add_shadow", strconv.FormatBool(*o.Shadow))
	w.WriteField("semitransparency", strconv.FormatBool(*o.Semitransparency))

	switch o.BackgroundType {
	case BackgroundPath:
		data, err := os.ReadFile(o.Background)

		if err != nil {
			return err
		}

		file, err := w.CreateFormFile("bg_image_file", filepath.Base(o.Background))

		if err != nil {
			return err
		}

		if _, err := file.Write(data); err != nil {
			return err
		}

	case BackgroundColor:
		w.WriteField("bg_color", o.Background)

	case BackgroundURL:
		w.WriteField("bg_image_url", o.Background)
	}

	return nil
}

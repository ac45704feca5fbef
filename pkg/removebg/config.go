package removebg

import (
	"net/http"
	"time"
)

type Option func(*Client)

func WithClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

func WithURL(url string) Option {
	return func(c *Client) {
		c.url = url
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// https://www.remove.bg/api
//
// Size, type, type level and format are versioned by the service and passed
// through unvalidated. The lists below document the values known today.
var SupportedSizes = []string{
	"auto",
	"preview",
	"small",
	"regular",
	"medium",
	"hd",
	"full",
	"4k",
}

var SupportedTypes = []string{
	"auto",
	"person",
	"product",
	"animal",
	"car",
	"car_interior",
	"car_part",
	"transportation",
	"graphics",
	"other",
}

var SupportedTypeLevels = []string{
	"none",
	"1",
	"2",
	"latest",
}

var SupportedFormats = []string{
	"auto",
	"png",
	"jpg",
	"zip",
}

var SupportedChannels = []string{
	"rgba",
	"alpha",
}

var SupportedBackgroundTypes = []BackgroundType{
	BackgroundPath,
	BackgroundURL,
	BackgroundColor,
}

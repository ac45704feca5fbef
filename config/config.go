package config

import (
	"bytes"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/adrianliechti/removebg/pkg/limiter"
	"github.com/adrianliechti/removebg/pkg/removebg"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Remover removebg.Remover
}

func Parse(path string) (*Config, error) {
	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	client, err := createClient(file)

	if err != nil {
		return nil, err
	}

	c := &Config{
		Remover: limiter.NewRemover(createLimiter(file.Limit), client),
	}

	return c, nil
}

type configFile struct {
	APIKey   string `yaml:"api_key"`
	ErrorLog string `yaml:"error_log"`

	Endpoint string `yaml:"endpoint"`

	Timeout *int `yaml:"timeout"`
	Limit   *int `yaml:"limit"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createClient(file *configFile) (*removebg.Client, error) {
	if file.APIKey == "" {
		return nil, errors.New("missing api_key")
	}

	if file.ErrorLog == "" {
		return nil, errors.New("missing error_log")
	}

	options := []removebg.Option{
		removebg.WithClient(&http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}),
	}

	if file.Endpoint != "" {
		options = append(options, removebg.WithURL(file.Endpoint))
	}

	if file.Timeout != nil {
		options = append(options, removebg.WithTimeout(time.Duration(*file.Timeout)*time.Second))
	}

	return removebg.New(file.APIKey, file.ErrorLog, options...)
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}

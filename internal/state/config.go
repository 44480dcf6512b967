package state

import (
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl"
	"github.com/juju/errors"
	"github.com/temoto/paystation/currency"
	"github.com/temoto/paystation/log2"
	"github.com/temoto/paystation/station"
	"github.com/temoto/paystation/tele"
)

type Config struct {
	LogDebug bool `hcl:"log_debug"`

	Station struct {
		Coins []int `hcl:"coins"`
		Rate  struct {
			Cents   int `hcl:"cents"`
			Minutes int `hcl:"minutes"`
		} `hcl:"rate"`
	} `hcl:"station"`

	Receipt struct {
		QRDir  string `hcl:"qr_dir"`
		QRSize int    `hcl:"qr_size"`
	} `hcl:"receipt"`

	Tele tele.Config `hcl:"tele"`
}

// StationOptions converts config to station.Options, zero values mean defaults.
func (c *Config) StationOptions() (station.Options, error) {
	opt := station.Options{}
	for _, n := range c.Station.Coins {
		if n <= 0 {
			return opt, errors.NotValidf("config: station.coins item=%d", n)
		}
		opt.Coins = append(opt.Coins, currency.Nominal(n))
	}
	r := c.Station.Rate
	if r.Cents < 0 || r.Minutes < 0 {
		return opt, errors.NotValidf("config: station.rate cents=%d minutes=%d", r.Cents, r.Minutes)
	}
	if r.Cents != 0 || r.Minutes != 0 {
		opt.Rate = station.Rate{Cents: currency.Amount(r.Cents), Minutes: station.Minutes(r.Minutes)}
	}
	return opt, nil
}

func ReadConfig(r io.Reader, log *log2.Log) (*Config, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Trace(err)
	}
	c := new(Config)
	if err = hcl.Unmarshal(b, c); err != nil {
		return nil, errors.Annotate(err, "config: hcl")
	}
	if _, err = c.StationOptions(); err != nil {
		return nil, err
	}
	log.Debugf("config station=%+v tele.enable=%t", c.Station, c.Tele.Enabled)
	return c, nil
}

func ReadConfigFile(path string, log *log2.Log) (*Config, error) {
	if pathAbs, err := filepath.Abs(path); err != nil {
		log.Errorf("filepath.Abs(%s) error=%v", path, err)
	} else {
		path = pathAbs
	}
	log.Debugf("reading config file %s", path)

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer f.Close()
	c, err := ReadConfig(f, log)
	return c, errors.Annotatef(err, "config file=%s", path)
}

func MustReadConfig(r io.Reader, log *log2.Log) *Config {
	c, err := ReadConfig(r, log)
	if err != nil {
		log.Fatal(errors.ErrorStack(err))
	}
	return c
}

func MustReadConfigFile(path string, log *log2.Log) *Config {
	c, err := ReadConfigFile(path, log)
	if err != nil {
		log.Fatal(errors.ErrorStack(err))
	}
	return c
}

/*
 * config.go, part of gosketch.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package config holds the settings of an editing session, read from YAML.
//Fields missing from the file keep their default values.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

//ErrInvalid is returned, wrapped, for a configuration that fails validation.
var ErrInvalid = errors.New("invalid configuration")

var validate = validator.New()

//Config contains the settings of a session.
type Config struct {
	//Number of undo steps kept. 0 means no limit.
	HistoryLimit int `yaml:"history_limit" validate:"gte=0"`
	//Decimals of the coordinates written to Molfiles.
	CoordinateDecimals int `yaml:"coordinate_decimals" validate:"min=1,max=4"`
	//Length of the bonds drawn by the editor.
	BondLength float64 `yaml:"bond_length" validate:"gt=0"`
	//Symmetrized atoms closer than this to an existing atom are merged into it.
	MergeTolerance float64 `yaml:"merge_tolerance" validate:"gt=0"`
	LogLevel       string  `yaml:"log_level" validate:"oneof=debug info warn error"`
	//Goes in the Molfile header, which has room for 8 characters.
	ProgramName string `yaml:"program_name" validate:"max=8"`
}

//Default returns the default settings.
func Default() *Config {
	return &Config{
		HistoryLimit:       0,
		CoordinateDecimals: 4,
		BondLength:         1.5,
		MergeTolerance:     1e-3,
		LogLevel:           "info",
		ProgramName:        "gosketch",
	}
}

//Error is the error type of the package. It fulfills chem.Error.
type Error struct {
	message  string
	filename string
	kind     error
	deco     []string
}

func (err *Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("config: %s", err.message)
	}
	return fmt.Sprintf("config: %s: %s", err.filename, err.message)
}

func (err *Error) Unwrap() error { return err.kind }

//Decorate adds dec to the decoration slice of the error and returns the result.
func (err *Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Parse reads a configuration from YAML text, on top of the defaults.
//Unknown keys are an error.
func Parse(data []byte) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	//An empty document gives io.EOF, which just means "all defaults".
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, &Error{message: err.Error(), kind: ErrInvalid, deco: []string{"Parse"}}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

//Load reads the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{message: err.Error(), filename: path, kind: err, deco: []string{"Load"}}
	}
	c, err := Parse(data)
	if err != nil {
		var cerr *Error
		if errors.As(err, &cerr) {
			cerr.filename = path
			cerr.Decorate("Load")
		}
		return nil, err
	}
	return c, nil
}

//Validate checks every field of the configuration.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &Error{message: err.Error(), kind: ErrInvalid, deco: []string{"Validate"}}
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fieldError(e))
	}
	return &Error{message: strings.Join(msgs, "; "), kind: ErrInvalid, deco: []string{"Validate"}}
}

//fieldError returns a message naming the YAML key of the field.
func fieldError(e validator.FieldError) string {
	key := e.Field()
	if f, ok := yamlKeys[e.StructField()]; ok {
		key = f
	}
	switch e.Tag() {
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", key, e.Param())
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters long", key, e.Param())
		}
		return fmt.Sprintf("%s must be at most %s", key, e.Param())
	case "gt":
		return fmt.Sprintf("%s must be larger than %s", key, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", key, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", key)
	}
}

var yamlKeys = map[string]string{
	"HistoryLimit":       "history_limit",
	"CoordinateDecimals": "coordinate_decimals",
	"BondLength":         "bond_length",
	"MergeTolerance":     "merge_tolerance",
	"LogLevel":           "log_level",
	"ProgramName":        "program_name",
}

//Level returns the zap level for LogLevel. Validated configurations always have one.
func (c *Config) Level() zapcore.Level {
	l, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return l
}

//Logger builds a production zap logger at the configured level.
func (c *Config) Logger() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(c.Level())
	return zc.Build()
}

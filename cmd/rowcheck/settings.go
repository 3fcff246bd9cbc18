package main

import (
	"github.com/dmitrymomot/strcheck/pkg/config"
	"github.com/dmitrymomot/strcheck/pkg/environment"
	"github.com/dmitrymomot/strcheck/pkg/i18n"
	"github.com/dmitrymomot/strcheck/pkg/logger"
	"github.com/dmitrymomot/strcheck/pkg/validator"
)

type settings struct {
	Format    string `env:"FORMAT" envDefault:"text" validate:"oneof=text json"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	Comma     string `env:"COMMA" envDefault:"," validate:"len=1"`
	NullValue string `env:"NULL_VALUE"`
}

type appSettings struct {
	settings
	env        environment.Environment
	validation validator.Options
}

func loadSettings(environ map[string]string) (appSettings, error) {
	var s appSettings
	if err := config.Load(&s.settings, config.WithPrefix("ROWCHECK_"), config.WithEnvironment(environ)); err != nil {
		return s, err
	}
	if _, err := logger.ParseLevel(s.LogLevel); err != nil {
		return s, err
	}
	if err := config.Load(&s.validation, config.WithPrefix("VALIDATION_"), config.WithEnvironment(environ)); err != nil {
		return s, err
	}

	if _, ok := environ["VALIDATION_SHOW_ROW_INDEX"]; !ok {
		s.validation.ShowRowIndex = true
	}
	if _, ok := environ["VALIDATION_LANGUAGE"]; !ok {
		s.validation.Language = i18n.MatchLanguage(
			environ["LANG"],
			validator.DefaultMessages().SupportedLanguages(),
			i18n.DefaultLanguage,
		)
	}

	s.env = environment.Parse(environ["APP_ENV"])
	return s, nil
}

func (s appSettings) comma() rune {
	return []rune(s.Comma)[0]
}

// Package config loads the startup parameters of a console application.
// Values are read once at startup from the environment; none of them are
// part of the runtime contract.
package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/swiftdrop/console-lib/e"
)

const (
	ECode010001 = e.Code0100 + "01"
)

// Params holds the environment provided configuration
type Params struct {
	APIBaseURL       string
	SocketURL        string
	PushProviderKey  string
	AndroidStoreLink string
	IOSStoreLink     string
}

// GetParamsFromENV initializes new params and populates from ENV variables.
// A .env file in the working directory is loaded first when present. The
// API base URL is the only required value
func GetParamsFromENV() (p *Params, err error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Debug().Err(err).Msg("GetParamsFromENV.1")
	}

	p = &Params{}

	if os.Getenv("CONSOLE_API_URL") != "" {
		p.APIBaseURL = os.Getenv("CONSOLE_API_URL")
	}
	if os.Getenv("CONSOLE_SOCKET_URL") != "" {
		p.SocketURL = os.Getenv("CONSOLE_SOCKET_URL")
	}
	if os.Getenv("PUSH_PROVIDER_KEY") != "" {
		p.PushProviderKey = os.Getenv("PUSH_PROVIDER_KEY")
	}
	if os.Getenv("ANDROID_STORE_LINK") != "" {
		p.AndroidStoreLink = os.Getenv("ANDROID_STORE_LINK")
	}
	if os.Getenv("IOS_STORE_LINK") != "" {
		p.IOSStoreLink = os.Getenv("IOS_STORE_LINK")
	}

	if p.APIBaseURL == "" {
		return nil, e.N(ECode010001, e.MsgConfigAPIBaseURLRequired)
	}

	return p, nil
}

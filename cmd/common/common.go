/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package common

import (
	"strings"

	"github.com/trustbloc/logutil-go/pkg/log"

	"github.com/proofly/proofly/internal/logfields"
)

const (
	// LogLevelFlagName is the flag name used for setting the default log level.
	LogLevelFlagName = "log-level"
	// LogLevelEnvKey is the env var name used for setting the default log level.
	LogLevelEnvKey = "LOG_LEVEL"
	// LogLevelFlagShorthand is the shorthand flag name used for setting the default log level.
	LogLevelFlagShorthand = "l"
	// LogLevelPrefixFlagUsage is the usage text for the log level flag.
	LogLevelPrefixFlagUsage = "Default log level, or a module spec such as " +
		"issuecredential=DEBUG:ledger-anchor=WARNING:INFO where the last entry is the default. " +
		"Supported levels are: " + supportedLevels + ". Defaults to INFO. " +
		"Alternatively, this can be set with the following environment variable: " + LogLevelEnvKey
)

const supportedLevels = "PANIC, FATAL, ERROR, WARNING, INFO, DEBUG"

// SetDefaultLogLevel applies userLogLevel, which is either a single level or a module spec
// such as "ledger-anchor=DEBUG:INFO". An empty or invalid value resets every module to INFO.
func SetDefaultLogLevel(logger *log.Log, userLogLevel string) {
	userLogLevel = strings.TrimSpace(userLogLevel)

	if userLogLevel == "" {
		log.SetLevel("", log.INFO)

		return
	}

	if strings.Contains(userLogLevel, "=") {
		if err := log.SetSpec(userLogLevel); err != nil {
			logger.Warn("Invalid log spec, defaulting to INFO", log.WithError(err),
				logfields.WithUserLogLevel(userLogLevel))

			log.SetLevel("", log.INFO)
		}

		return
	}

	level, err := log.ParseLevel(userLogLevel)
	if err != nil {
		logger.Warn("Invalid log level, defaulting to INFO. Supported levels are: "+supportedLevels,
			logfields.WithUserLogLevel(userLogLevel))

		level = log.INFO
	}

	if level == log.DEBUG {
		logger.Info("Debug logging enabled, request handling may slow down")
	}

	log.SetLevel("", level)
}

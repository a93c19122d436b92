// Copyright 2015-2017 Piprate Limited
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logging provides the structured logger used by the CLI. The
// jsonld package, document loader included, does not log; its algorithmic core (context processing, expansion,
// compaction, framing, the RDF bridge) stays side-effect-free and never
// imports this package.
package logging

import (
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Logger is the process-wide structured logger. Callers should prefer
// WithOperation/WithInvocation over mutating this value directly.
var Logger = logrus.New()

func init() {
	Logger.SetOutput(os.Stderr)
	Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

// SetLevel parses level (e.g. "debug", "info", "warn", "error") and applies
// it to Logger, falling back to InfoLevel on an unrecognized string.
func SetLevel(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	Logger.SetLevel(parsed)
}

// SetJSON switches the logger to JSON-formatted output, the form a
// container log collector expects in production.
func SetJSON(enabled bool) {
	if enabled {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

// WithOperation returns an entry tagged with the name of a processor entry
// point (expand, compact, flatten, frame, to_rdf, from_rdf, normalize).
func WithOperation(op string) *logrus.Entry {
	return Logger.WithField("operation", op)
}

// WithInvocation returns an entry carrying a fresh correlation ID, used to
// tie together the handful of log lines emitted by a single CLI invocation
// or library call. The ID has no bearing on blank-node identifiers, which
// remain a deterministic per-document counter.
func WithInvocation(op string) *logrus.Entry {
	return WithOperation(op).WithField("invocation_id", uuid.NewString())
}

// WithDocument annotates an entry with the URL of a document being loaded
// and the current remote-context dereference depth.
func WithDocument(entry *logrus.Entry, url string, remoteContextDepth int) *logrus.Entry {
	return entry.WithFields(logrus.Fields{
		"document_url":         url,
		"remote_context_depth": remoteContextDepth,
	})
}

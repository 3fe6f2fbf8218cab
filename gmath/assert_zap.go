// Copyright 2025 go-highway Authors
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

package gmath

import "go.uber.org/zap"

// ZapAssertHook returns a hook that reports violations through
// logger.DPanic. A development logger panics after logging; a production
// logger only records the violation and lets the call continue.
func ZapAssertHook(logger *zap.Logger) AssertHook {
	logger = logger.WithOptions(zap.AddCallerSkip(2))
	return func(msg string) {
		logger.DPanic("gmath precondition violated",
			zap.String("reason", msg),
			zap.String("dispatch", CurrentName()),
		)
	}
}

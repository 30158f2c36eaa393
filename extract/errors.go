// Copyright 2026 Inklab
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


package extract

import "errors"

var (
	// ErrUnreadableFile indicates the stored source file could not be read.
	ErrUnreadableFile = errors.New("source file could not be read")

	// ErrNotText indicates the source file does not contain decodable text.
	ErrNotText = errors.New("source file is not valid text")

	// ErrUnsupportedFormat indicates no extractor handles the file format.
	ErrUnsupportedFormat = errors.New("unsupported document format")
)

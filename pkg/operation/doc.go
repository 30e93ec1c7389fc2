// Copyright 2025 walteh LLC
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

/*
Package operation rewrites the staff stylesheet palette in place.

One run is a single read, replace, write pass:

	recolor, err := operation.New(operation.Options{
		Files:   file.NewManager("."),
		Console: log.New(os.Stdout, os.Stderr, zerolog.InfoLevel),
	})
	if err != nil {
		return err
	}
	result, err := recolor.Execute(ctx)

Execute reads the whole target, applies text.ColorRules in order, writes the result back
through a temp file and rename, and only then prints the two confirmation lines. A file that
cannot be read is never written. A file that cannot be written keeps its original content.
*/
package operation

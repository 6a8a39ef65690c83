// This file is part of zxpreview.
//
// zxpreview is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// zxpreview is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with zxpreview.  If not, see <https://www.gnu.org/licenses/>.

package tapeloader

import (
	"archive/zip"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/zxpreview/curated"
)

// FileExtensions is the list of file extensions that are recognised by the
// tapeloader package.
var FileExtensions = [...]string{".TAP", ".WAV", ".MP3"}

// the file extension of archives that can be looked inside
const archiveExtension = ".ZIP"

// Loader is used to specify the tape to load.
type Loader struct {
	// filename of tape to load
	Filename string

	// expected hash of the loaded tape. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte

	// does the Data field consist of a sound recording (WAV or MP3)
	IsSoundData bool
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	ld := Loader{
		Filename: filename,
	}
	ld.IsSoundData = isSoundFile(filename)
	return ld
}

func isSoundFile(filename string) bool {
	switch strings.ToUpper(path.Ext(filename)) {
	case ".WAV", ".MP3":
		return true
	}
	return false
}

func isTapeFile(filename string) bool {
	ext := strings.ToUpper(path.Ext(filename))
	for _, e := range FileExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// ShortName returns a shortened version of the tape filename, suitable for
// naming output files.
func (ld Loader) ShortName() string {
	s := path.Base(filepath.ToSlash(ld.Filename))
	return strings.TrimSuffix(s, path.Ext(s))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the tape data. Filenames with a valid URL scheme will use that method
// to load the data. Currently supported schemes are HTTP and local files.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(ld.Filename); err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	var err error

	switch scheme {
	case "http", "https":
		ld.Data, err = loadHTTP(ld.Filename)
	case "file":
		ld.Data, err = ld.loadFile()
	default:
		// a single letter scheme is probably a windows drive letter
		if len(scheme) == 1 {
			ld.Data, err = ld.loadFile()
		} else {
			err = fmt.Errorf("unsupported URL scheme (%s)", scheme)
		}
	}
	if err != nil {
		ld.Data = nil
		return curated.Errorf("tapeloader: %v", err)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))
	if ld.Hash != "" && ld.Hash != hash {
		ld.Data = nil
		return curated.Errorf("tapeloader: %v", "unexpected hash value")
	}
	ld.Hash = hash

	return nil
}

func loadHTTP(filename string) ([]byte, error) {
	resp, err := http.Get(filename)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http status: %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}

func (ld *Loader) loadFile() ([]byte, error) {
	filename := strings.TrimPrefix(ld.Filename, "file://")

	archive, inner, ok := splitArchivePath(filename)
	if !ok {
		return os.ReadFile(filename)
	}

	zf, err := zip.OpenReader(archive)
	if err != nil {
		return nil, err
	}
	defer zf.Close()

	for _, f := range zf.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if inner == "" && !isTapeFile(f.Name) {
			continue
		}
		if inner != "" && f.Name != inner {
			continue
		}

		// the sound data flag depends on the file inside the archive and not
		// the archive itself
		ld.IsSoundData = isSoundFile(f.Name)

		r, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return io.ReadAll(r)
	}

	if inner == "" {
		return nil, fmt.Errorf("no tape file in %s", archive)
	}
	return nil, fmt.Errorf("%s not found in %s", inner, archive)
}

// splitArchivePath splits a path that points to or into a zip archive. the
// inner path uses forward slashes as is the convention for zip files.
func splitArchivePath(filename string) (string, string, bool) {
	p := filepath.ToSlash(filename)
	parts := strings.Split(p, "/")

	for i := range parts {
		if strings.ToUpper(path.Ext(parts[i])) != archiveExtension {
			continue
		}
		archive := filepath.FromSlash(strings.Join(parts[:i+1], "/"))
		if fi, err := os.Stat(archive); err != nil || fi.IsDir() {
			continue
		}
		return archive, strings.Join(parts[i+1:], "/"), true
	}

	return "", "", false
}

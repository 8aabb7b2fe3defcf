package schema

import (
	"cmp"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// FileSuffix is the suffix of schema definition files.
const FileSuffix = ".cba.yaml"

// FileProvider lists schema definition files to be loaded.
type FileProvider interface {
	Load(FileProviderCallback) error
}

// FileProviderCallback is called by a FileProvider for each file.
type FileProviderCallback func(info FileInfo) error

// FileInfo is a schema definition file. Schema is the default schema of the tables defined in the file, and may
// be blank.
type FileInfo struct {
	Name   string
	File   io.Reader
	Schema string
}

type fsFileProvider struct {
	fs         fs.FS
	include    func(path string, entry os.DirEntry) bool
	schemaFunc func(dirs []string) string
}

// FSFileProviderOption configures the providers of NewFSFileProvider and NewDirectoryFileProvider.
type FSFileProviderOption func(*fsFileProvider)

// NewDirectoryFileProvider creates a [FileProvider] that list files from a directory, sorted by name.
// Only files with the ".cba.yaml" extension are returned.
func NewDirectoryFileProvider(rootDir string, options ...FSFileProviderOption) FileProvider {
	return NewFSFileProvider(os.DirFS(rootDir), options...)
}

// NewFSFileProvider creates a [FileProvider] that list files from a [fs.FS], sorted by name.
// Only files with the ".cba.yaml" extension are returned. Files are listed before sub-directories.
func NewFSFileProvider(fs fs.FS, options ...FSFileProviderOption) FileProvider {
	ret := &fsFileProvider{
		fs: fs,
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.include == nil {
		ret.include = func(string, os.DirEntry) bool {
			return true
		}
	}
	if ret.schemaFunc == nil {
		ret.schemaFunc = noDirectorySchemaFunc
	}
	return ret
}

// WithDirectoryIncludeFunc sets a callback to allow choosing files that will be read.
// Check entry [os.DirEntry.IsDir] to detect files or directories.
func WithDirectoryIncludeFunc(include func(path string, entry os.DirEntry) bool) FSFileProviderOption {
	return func(provider *fsFileProvider) {
		provider.include = include
	}
}

// WithDirectoryAsSchema uses the directory of each file as the default schema of its tables. Inner directories
// are joined by an underscore (_).
func WithDirectoryAsSchema() FSFileProviderOption {
	return func(provider *fsFileProvider) {
		provider.schemaFunc = DefaultDirectorySchemaFunc
	}
}

// WithDirectorySchemaFunc allows returning a custom default schema for each directory.
func WithDirectorySchemaFunc(schemaFunc func(dirs []string) string) FSFileProviderOption {
	return func(provider *fsFileProvider) {
		provider.schemaFunc = schemaFunc
	}
}

// DefaultDirectorySchemaFunc joins directories using an underscore (_).
func DefaultDirectorySchemaFunc(dirs []string) string {
	return strings.Join(dirs, "_")
}

// noDirectorySchemaFunc don't set a default schema.
func noDirectorySchemaFunc(dirs []string) string {
	return ""
}

func (d fsFileProvider) Load(f FileProviderCallback) error {
	return d.loadFiles(".", nil, f)
}

func (d fsFileProvider) loadFiles(currentPath string, dirs []string, f FileProviderCallback) error {
	files, err := d.readDirSorted(currentPath)
	if err != nil {
		return errors.Wrapf(err, "error reading directory '%s'", currentPath)
	}

	var subDirs []string

	for _, file := range files {
		if !d.include(currentPath, file) {
			continue
		}

		fullPath := path.Join(currentPath, file.Name())

		if file.IsDir() {
			subDirs = append(subDirs, file.Name())
			continue
		}

		if strings.HasSuffix(file.Name(), FileSuffix) {
			localFile, err := d.fs.Open(fullPath)
			if err != nil {
				return errors.Wrapf(err, "error opening file '%s'", fullPath)
			}

			err = f(FileInfo{
				Name:   fullPath,
				File:   localFile,
				Schema: d.schemaFunc(dirs),
			})

			fileErr := localFile.Close()
			if err != nil {
				return errors.Wrapf(err, "error processing file '%s'", fullPath)
			}
			if fileErr != nil {
				return errors.Wrapf(fileErr, "error closing file '%s'", fullPath)
			}
		}
	}

	for _, dir := range subDirs {
		err := d.loadFiles(path.Join(currentPath, dir), append(slices.Clone(dirs), dir), f)
		if err != nil {
			return err
		}
	}

	return nil
}

func (d fsFileProvider) readDirSorted(currentPath string) ([]os.DirEntry, error) {
	files, err := fs.ReadDir(d.fs, currentPath)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(files, func(a, b os.DirEntry) int {
		return cmp.Compare(a.Name(), b.Name())
	})

	return files, nil
}

// NewStringFileProvider creates a [FileProvider] that simulates a file for each string, in the array order.
func NewStringFileProvider(files []string, options ...StringFileProviderOption) FileProvider {
	ret := &stringFileProvider{files: files}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}

// StringFileProviderOption configures the provider of NewStringFileProvider.
type StringFileProviderOption func(*stringFileProvider)

// WithStringFileProviderSchemas sets default schemas using the same array indexes as the files parameter.
func WithStringFileProviderSchemas(schemas []string) StringFileProviderOption {
	return func(p *stringFileProvider) {
		p.schemas = schemas
	}
}

type stringFileProvider struct {
	files   []string
	schemas []string
}

func (s stringFileProvider) Load(callback FileProviderCallback) error {
	digitSize := fmt.Sprintf("%d", len(s.files))
	fileFmt := fmt.Sprintf("%%0%dd-file%s", len(digitSize)+1, FileSuffix)

	for idx, data := range s.files {
		var schema string
		if idx < len(s.schemas) {
			schema = s.schemas[idx]
		}
		err := callback(FileInfo{
			Name:   fmt.Sprintf(fileFmt, idx),
			File:   strings.NewReader(data),
			Schema: schema,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/pprof/profile"
)

// getInputAsFile resolves an input reference to a local file path.
// - Anything without "://" is treated as a local path (relative or absolute).
// - file:// URIs use their path directly.
// - http:// and https:// URIs are downloaded to a temporary file.
// It returns the final path, a cleanup function for any temporary file,
// and an error.
func getInputAsFile(uriStr string) (filePath string, cleanup func(), err error) {
	cleanup = func() {}

	if !strings.Contains(uriStr, "://") {
		absPath, err := filepath.Abs(uriStr)
		if err != nil {
			return "", nil, fmt.Errorf("failed to get absolute path for '%s': %w", uriStr, err)
		}
		return absPath, cleanup, nil
	}

	parsedURI, err := url.Parse(uriStr)
	if err != nil {
		return "", nil, fmt.Errorf("invalid input URI '%s': %w", uriStr, err)
	}

	switch parsedURI.Scheme {
	case "file":
		filePath = parsedURI.Path
		if filePath == "" {
			return "", nil, fmt.Errorf("invalid file path derived from URI '%s'", uriStr)
		}
		return filePath, cleanup, nil

	case "http", "https":
		log.Printf("Downloading input from URL: %s", uriStr)
		resp, err := http.Get(uriStr)
		if err != nil {
			return "", nil, fmt.Errorf("failed to download input from '%s': %w", uriStr, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return "", nil, fmt.Errorf("failed to download input from '%s': received status code %d", uriStr, resp.StatusCode)
		}

		tempFile, err := os.CreateTemp("", "flamescan-*")
		if err != nil {
			return "", nil, fmt.Errorf("failed to create temporary file for download: %w", err)
		}
		filePath = tempFile.Name()

		cleanup = func() {
			if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
				log.Printf("Warning: failed to remove temporary file '%s': %v", filePath, err)
			}
		}

		_, err = io.Copy(tempFile, resp.Body)
		closeErr := tempFile.Close()
		if err != nil {
			cleanup()
			return "", nil, fmt.Errorf("failed to write downloaded content to temporary file '%s': %w", filePath, err)
		}
		if closeErr != nil {
			log.Printf("Warning: failed to close temporary file handle for '%s': %v", filePath, closeErr)
		}

		return filePath, cleanup, nil

	default:
		return "", nil, fmt.Errorf("unsupported URI scheme '%s', only 'file://', 'http://', 'https://', or a plain local path are supported", parsedURI.Scheme)
	}
}

// readInput resolves an input reference and reads its full content as text.
// A missing file is reported distinctly from other read failures.
func readInput(uriStr string) (string, error) {
	filePath, cleanup, err := getInputAsFile(uriStr)
	if err != nil {
		return "", err
	}
	defer cleanup()

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %s", uriStr)
		}
		return "", fmt.Errorf("failed to read '%s': %w", uriStr, err)
	}
	return string(data), nil
}

// readProfile resolves an input reference and parses it as a pprof profile.
func readProfile(uriStr string) (*profile.Profile, error) {
	filePath, cleanup, err := getInputAsFile(uriStr)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", uriStr)
		}
		return nil, fmt.Errorf("failed to open '%s': %w", uriStr, err)
	}
	defer file.Close()

	prof, err := profile.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse profile '%s': %w", uriStr, err)
	}
	return prof, nil
}

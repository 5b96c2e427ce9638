package common

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	fenceJSONOpen = regexp.MustCompile("^```json\\s*")
	fenceOpen     = regexp.MustCompile("^```\\s*")
	fenceClose    = regexp.MustCompile("\\s*```$")
)

// StripCodeFence removes a surrounding markdown code fence (``` or ```json)
// from a model response, if present. Anything else passes through untouched.
func StripCodeFence(s string) string {
	cleaned := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(cleaned, "```json"):
		cleaned = fenceJSONOpen.ReplaceAllString(cleaned, "")
		cleaned = fenceClose.ReplaceAllString(cleaned, "")
	case strings.HasPrefix(cleaned, "```"):
		cleaned = fenceOpen.ReplaceAllString(cleaned, "")
		cleaned = fenceClose.ReplaceAllString(cleaned, "")
	}
	return cleaned
}

// ParseJSON cleans and unmarshals a JSON object from a model response into T.
// It tolerates common LLM quirks: code fences, prose before or after the
// object. It fails if no object is present or the object does not unmarshal.
func ParseJSON[T any](response string) (T, error) {
	var zero T
	jsonStr := StripCodeFence(response)

	start := strings.IndexByte(jsonStr, '{')
	end := strings.LastIndexByte(jsonStr, '}')
	if start == -1 || end == -1 || start >= end {
		return zero, fmt.Errorf("no JSON object found in response")
	}
	jsonStr = jsonStr[start : end+1]

	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return zero, fmt.Errorf("failed to unmarshal JSON: %w\nData: %s", err, jsonStr)
	}

	return result, nil
}

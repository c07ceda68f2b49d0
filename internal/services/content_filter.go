package services

import (
	"regexp"
	"sync"
)

var bannedWords = []string{
	"fuck", "fucking", "fucker", "shit", "shitty", "bullshit",
	"ass", "asshole", "bastard", "bitch",
	"spam", "scam", "scammer", "phishing", "malware",
}

// ContentFilter screens review comments before they are stored.
type ContentFilter struct {
	bannedWordRegexps []*regexp.Regexp
	urlPattern        *regexp.Regexp
	phonePattern      *regexp.Regexp
	repeatedPattern   *regexp.Regexp
	compiled          bool
	mu                sync.RWMutex
}

func NewContentFilter() *ContentFilter {
	f := &ContentFilter{}
	f.compilePatterns()
	return f
}

func (f *ContentFilter) compilePatterns() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.compiled {
		return
	}

	f.bannedWordRegexps = make([]*regexp.Regexp, 0, len(bannedWords))
	for _, word := range bannedWords {
		pattern := `(?i)\b` + regexp.QuoteMeta(word) + `\b`
		re, err := regexp.Compile(pattern)
		if err == nil {
			f.bannedWordRegexps = append(f.bannedWordRegexps, re)
		}
	}

	f.urlPattern = regexp.MustCompile(`(?i)(https?://\S+|www\.\S+\.\S+)`)
	f.phonePattern = regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}|\(\d{3}\)\s*\d{3}[-.\s]?\d{4}`)
	f.repeatedPattern = regexp.MustCompile(`(?i)([a-z!?.])\1{3,}`)
	f.compiled = true
}

// Check returns ok=false and a reason code for content that should not be
// published. Empty text is allowed; rating-only reviews are legal.
func (f *ContentFilter) Check(text string) (bool, string) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if text == "" {
		return true, ""
	}
	for _, re := range f.bannedWordRegexps {
		if re.MatchString(text) {
			return false, "inappropriate_language"
		}
	}
	if f.urlPattern.MatchString(text) {
		return false, "url_not_allowed"
	}
	if f.phonePattern.MatchString(text) {
		return false, "contact_info_not_allowed"
	}
	if f.repeatedPattern.MatchString(text) {
		return false, "spam_detected"
	}
	return true, ""
}

// RejectionMessage maps a reason code to user-facing text.
func (f *ContentFilter) RejectionMessage(reason string) string {
	messages := map[string]string{
		"inappropriate_language":   "Your review contains inappropriate language.",
		"url_not_allowed":          "URLs and web links are not allowed in reviews.",
		"contact_info_not_allowed": "Contact information is not allowed in reviews.",
		"spam_detected":            "Your review appears to be spam.",
	}
	if msg, ok := messages[reason]; ok {
		return msg
	}
	return "Your review does not meet our content guidelines."
}

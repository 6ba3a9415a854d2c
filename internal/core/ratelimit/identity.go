package ratelimit

import (
	"hash/fnv"
	"strconv"
	"strings"
)

// Identity derives a stable bucket key for a request.
// Precedence: authenticated user id, first X-Forwarded-For hop, X-Real-IP,
// then a hash of the User-Agent so anonymous clients without proxy headers
// still land in a stable bucket.
func Identity(userID, forwardedFor, realIP, userAgent string) string {
	if userID != "" {
		return userID
	}
	if forwardedFor != "" {
		hop := forwardedFor
		if i := strings.IndexByte(hop, ','); i >= 0 {
			hop = hop[:i]
		}
		if hop = strings.TrimSpace(hop); hop != "" {
			return hop
		}
	}
	if realIP != "" {
		return realIP
	}
	ua := userAgent
	if ua == "" {
		ua = "unknown"
	}
	h := fnv.New32a()
	h.Write([]byte(ua))
	return "ua-" + strconv.FormatUint(uint64(h.Sum32()), 36)
}

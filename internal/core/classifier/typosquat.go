package classifier

// brandTargets are hostnames frequently imitated by squatters
// checked against the registrable label only
var brandTargets = []string{
	"google.com",
	"youtube.com",
	"facebook.com",
	"instagram.com",
	"whatsapp.com",
	"twitter.com",
	"linkedin.com",
	"microsoft.com",
	"outlook.com",
	"apple.com",
	"icloud.com",
	"amazon.com",
	"netflix.com",
	"paypal.com",
	"chase.com",
	"wellsfargo.com",
	"bankofamerica.com",
	"coinbase.com",
	"binance.com",
	"github.com",
	"dropbox.com",
	"steampowered.com",
	"roblox.com",
	"yahoo.com",
	"gmail.com",
}

// maxSquatDistance is the edit distance cutoff for a squat match
const maxSquatDistance = 2

// findTyposquat reports the closest brand within the cutoff, if any
// exact brand matches are not squats
func findTyposquat(host string) (target string, distance int, ok bool) {
	reg := registrable(host)
	best := maxSquatDistance + 1
	for _, b := range brandTargets {
		if reg == b {
			return "", 0, false
		}
		// cheap length gate before the DP
		if absInt(len(reg)-len(b)) > maxSquatDistance {
			continue
		}
		if d := editDistance(reg, b, maxSquatDistance); d < best {
			best = d
			target = b
		}
	}
	if best <= maxSquatDistance && best > 0 {
		return target, best, true
	}
	return "", 0, false
}

// editDistance is Levenshtein with a band cutoff
// returns cutoff+1 as soon as the distance provably exceeds cutoff
func editDistance(a, b string, cutoff int) int {
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev := make([]int, lb+1)
	cur := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		cur[0] = i
		rowMin := cur[0]
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = minInt(minInt(cur[j-1]+1, prev[j]+1), prev[j-1]+cost)
			if cur[j] < rowMin {
				rowMin = cur[j]
			}
		}
		if rowMin > cutoff {
			return cutoff + 1
		}
		prev, cur = cur, prev
	}
	return prev[lb]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

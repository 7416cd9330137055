package gauntlet

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// LeaderboardResult is one competition's public standing for a profile.
type LeaderboardResult struct {
	Name  string
	Score int
	Rank  int
}

// FetchLeaderboard scrapes a public Battlesnake profile page for its
// current competition standings, used as an optional external fitness
// cross-check alongside self-play gauntlet results.
func FetchLeaderboard(profileURL string) ([]LeaderboardResult, error) {
	resp, err := http.Get(profileURL)
	if err != nil {
		return nil, fmt.Errorf("fetch leaderboard page: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read leaderboard page: %w", err)
	}

	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse leaderboard page: %w", err)
	}

	var results []LeaderboardResult
	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "div" && hasClasses(n, []string{"card", "p-1", "text-white"}) {
			result := LeaderboardResult{}
			extractResult(n, &result)
			results = append(results, result)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(doc)

	return results, nil
}

func extractResult(n *html.Node, result *LeaderboardResult) {
	var f func(*html.Node)
	f = func(node *html.Node) {
		if node.Type == html.ElementNode {
			switch {
			case node.Data == "h4" && hasClasses(node, []string{"text-center", "text-lg", "font-bold", "uppercase"}):
				result.Name = strings.TrimSpace(nodeText(node))
			case node.Data == "p" && (hasClasses(node, []string{"text-4xl", "text-center", "font-bold"}) || hasClasses(node, []string{"text-2xl", "text-center", "font-bold"})):
				scoreStr := strings.ReplaceAll(strings.TrimSpace(nodeText(node)), ",", "")
				if scoreStr != "--" {
					if score, err := strconv.Atoi(scoreStr); err == nil {
						result.Score = score
					}
				}
			case node.Data == "p" && hasClasses(node, []string{"text-lg", "text-center", "text-sm"}):
				if rankStr := extractRank(node); rankStr != "" {
					if rank, err := strconv.Atoi(rankStr); err == nil {
						result.Rank = rank
					}
				}
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}
	f(n)
}

func getAttr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func hasClasses(n *html.Node, required []string) bool {
	classes := map[string]bool{}
	for _, c := range strings.Fields(getAttr(n, "class")) {
		classes[c] = true
	}
	for _, r := range required {
		if !classes[r] {
			return false
		}
	}
	return true
}

func nodeText(n *html.Node) string {
	var buf bytes.Buffer
	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}
	f(n)
	return buf.String()
}

func extractRank(n *html.Node) string {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "big" {
			return strings.TrimFunc(nodeText(c), func(r rune) bool { return !unicode.IsDigit(r) })
		}
	}
	return ""
}

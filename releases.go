package cashie

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// contains http utils to fetch release notes from the project's forge

// Release is one published version of the application, as shown by the
// changelog command.
type Release struct {
	Tag   string
	Name  string
	Date  Date
	Notes string
	URL   string
}

// diskCache implements a simple disk cache for HTTP responses
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	// get from disk
	// diskcache implements a unique key per day, so the local tmp expires every day.
	key := fmt.Sprintf("%s %s %s", Today().String(), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	// otherwise attempt to store it in cache

	err = c.put(key, resp)
	if err != nil {
		log.Printf("cache write err (ignored): %v\n", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	file := filepath.Join(os.TempDir(), key)
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to disk cache
func (c *diskCache) put(key string, resp *http.Response) (err error) {
	file := filepath.Join(os.TempDir(), key)

	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}

	_, err = f.Write(content)
	f.Close()
	return err
}

// DailyClient returns a client with a cache all with daily expire
func DailyClient() *http.Client {
	client := new(http.Client)
	client.Transport = &diskCache{http.DefaultTransport}
	return client
}

// jwget performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
func jwget(ctx context.Context, client *http.Client, addr string, data interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}

// DefaultForge is the API endpoint the changelog is fetched from.
const DefaultForge = "https://api.github.com"

// FetchReleases retrieves the published releases of the repo ("owner/name")
// from the forge API. A repo that publishes no releases falls back to its
// commit log, one pseudo-release per commit, so the changelog is never
// empty.
func FetchReleases(ctx context.Context, client *http.Client, forge, repo string) ([]Release, error) {
	addr := fmt.Sprintf("%s/repos/%s/releases", strings.TrimSuffix(forge, "/"), repo)
	var jobj any
	if err := jwget(ctx, client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("error retrieving releases of %q: %w", repo, err)
	}
	releases, err := parseReleases(jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing releases of %q: %w", repo, err)
	}
	if len(releases) > 0 {
		return releases, nil
	}
	return fetchCommits(ctx, client, forge, repo)
}

// parseReleases reads the release list out of the forge's JSON answer.
func parseReleases(jobj any) ([]Release, error) {
	jlist, ok := jobj.([]any)
	if !ok {
		return nil, fmt.Errorf("answer is not a list")
	}
	var releases []Release
	for _, item := range jlist {
		r := Release{
			Tag:   jstring(item, "$.tag_name"),
			Name:  jstring(item, "$.name"),
			Notes: jstring(item, "$.body"),
			URL:   jstring(item, "$.html_url"),
		}
		if r.Name == "" {
			r.Name = r.Tag
		}
		if published := jstring(item, "$.published_at"); len(published) >= len(DateFormat) {
			d, err := ParseDate(published[:len(DateFormat)])
			if err == nil {
				r.Date = d
			}
		}
		releases = append(releases, r)
	}
	return releases, nil
}

// fetchCommits reads the repo's commit log as pseudo-releases.
func fetchCommits(ctx context.Context, client *http.Client, forge, repo string) ([]Release, error) {
	addr := fmt.Sprintf("%s/repos/%s/commits", strings.TrimSuffix(forge, "/"), repo)
	var jobj any
	if err := jwget(ctx, client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("error retrieving commits of %q: %w", repo, err)
	}
	jlist, ok := jobj.([]any)
	if !ok {
		return nil, fmt.Errorf("error parsing commits of %q: answer is not a list", repo)
	}
	var releases []Release
	for _, item := range jlist {
		sha := jstring(item, "$.sha")
		if len(sha) > 7 {
			sha = sha[:7]
		}
		message := jstring(item, "$.commit.message")
		title, _, _ := strings.Cut(message, "\n")
		r := Release{
			Tag:   sha,
			Name:  title,
			Notes: message,
			URL:   jstring(item, "$.html_url"),
		}
		if committed := jstring(item, "$.commit.committer.date"); len(committed) >= len(DateFormat) {
			d, err := ParseDate(committed[:len(DateFormat)])
			if err == nil {
				r.Date = d
			}
		}
		releases = append(releases, r)
	}
	return releases, nil
}

// jstring reads a string at the given jsonpath, empty when absent.
func jstring(jobj any, path string) string {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return ""
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	s, _ := jval.(string)
	return s
}

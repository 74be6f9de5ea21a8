package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net"
	"net/http"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

const (
	baseURL      = "http://127.0.0.1:18090"
	numWorkers   = 50
	testDuration = 10 * time.Second
)

var statTypes = []string{
	"courses", "facility", "visitors", "student-pages", "performance",
	"preference", "exam", "assignment", "current-assignment",
	"weekly-scores", "students",
}

var httpClient = &http.Client{
	Timeout: 5 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

func today() string {
	return time.Now().Format("20060102")
}

func main() {
	fmt.Println("=== DashboardStatsDaemon Load Test ===")
	fmt.Printf("Workers: %d | Duration: %s | Types: %d\n\n", numWorkers, testDuration, len(statTypes))

	// Wait for server
	fmt.Print("Waiting for server... ")
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(baseURL + "/health")
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			break
		}
		if i == 29 {
			fmt.Println("FAILED: server not responding")
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println("OK")

	// Give the collectors a moment to write today's documents
	fmt.Println("\nWaiting 2s for the first collection cycle...")
	time.Sleep(2 * time.Second)

	// Phase 1: statistics reads only
	fmt.Println("\n--- Phase 1: Statistics reads ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.45:
			return doGetDocument(rng)
		case r < 0.85:
			return doGetLatest(rng)
		default:
			return doGetTypes()
		}
	})

	// Phase 2: mixed statistics reads and board traffic
	fmt.Println("\n--- Phase 2: Mixed statistics + board ---")
	var postIDs syncIDs
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.40:
			return doGetDocument(rng)
		case r < 0.60:
			return doGetLatest(rng)
		case r < 0.75:
			return doCreatePost(rng, &postIDs)
		case r < 0.90:
			return doGetPost(rng, &postIDs)
		default:
			return doListPosts()
		}
	})
}

// syncIDs collects created post IDs so readers have something to hit.
type syncIDs struct {
	mu  sync.Mutex
	ids []string
}

func (s *syncIDs) add(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = append(s.ids, id)
}

func (s *syncIDs) pick(rng *rand.Rand) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.ids) == 0 {
		return "", false
	}
	return s.ids[rng.Intn(len(s.ids))], true
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	var totalOps atomic.Int64
	stop := make(chan struct{})

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					r := workFn(rng)
					totalOps.Add(1)
					results <- r
				}
			}
		}(rand.Int63() + int64(i))
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, duration)
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps int64
	var totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-26s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + repeat("-", 92))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		avg := avgDuration(s.latencies)
		p50 := percentile(s.latencies, 0.50)
		p95 := percentile(s.latencies, 0.95)
		p99 := percentile(s.latencies, 0.99)

		fmt.Printf("  %-26s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors, fmtDur(avg), fmtDur(p50), fmtDur(p95), fmtDur(p99))
	}

	rps := float64(totalOps) / duration.Seconds()
	fmt.Println("  " + repeat("-", 92))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, rps)
}

func doGet(endpoint, url string, wantStatus int) result {
	start := time.Now()
	resp, err := httpClient.Get(url)
	lat := time.Since(start)
	if err != nil {
		return result{endpoint, 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{endpoint, resp.StatusCode, lat, resp.StatusCode != wantStatus}
}

func doGetDocument(rng *rand.Rand) result {
	typ := statTypes[rng.Intn(len(statTypes))]
	url := fmt.Sprintf("%s/api/v1/statistics/%s/%s", baseURL, typ, today())
	return doGet("GET /statistics/{t}/{d}", url, 200)
}

func doGetLatest(rng *rand.Rand) result {
	typ := statTypes[rng.Intn(len(statTypes))]
	url := fmt.Sprintf("%s/api/v1/statistics/%s/%s/latest", baseURL, typ, today())
	return doGet("GET /statistics/.../latest", url, 200)
}

func doGetTypes() result {
	return doGet("GET /statistics/types", baseURL+"/api/v1/statistics/types", 200)
}

func doListPosts() result {
	return doGet("GET /board/posts", baseURL+"/api/v1/board/posts", 200)
}

func doCreatePost(rng *rand.Rand, ids *syncIDs) result {
	body := map[string]string{
		"title":   fmt.Sprintf("Load test post %d", rng.Intn(100000)),
		"content": "generated by the load test",
	}
	data, _ := json.Marshal(body)

	start := time.Now()
	resp, err := httpClient.Post(baseURL+"/api/v1/board/posts", "application/json", bytes.NewReader(data))
	lat := time.Since(start)
	if err != nil {
		return result{"POST /board/posts", 0, lat, true}
	}
	defer resp.Body.Close()

	if resp.StatusCode == 201 {
		var post struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&post); err == nil && post.ID != "" {
			ids.add(post.ID)
		}
	} else {
		io.Copy(io.Discard, resp.Body)
	}
	return result{"POST /board/posts", resp.StatusCode, lat, resp.StatusCode != 201}
}

func doGetPost(rng *rand.Rand, ids *syncIDs) result {
	id, ok := ids.pick(rng)
	if !ok {
		return doListPosts()
	}
	url := fmt.Sprintf("%s/api/v1/board/posts/%s", baseURL, id)
	return doGet("GET /board/posts/{id}", url, 200)
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}

func repeat(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}

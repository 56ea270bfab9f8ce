package morphy

import (
	"reflect"
	"sync"
	"testing"

	"github.com/pkg/errors"
)

type countingResolver struct {
	mu    sync.Mutex
	calls int
	next  Resolver
}

func (c *countingResolver) Resolve(form string, pos PartOfSpeech) ([]string, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	return c.next.Resolve(form, pos)
}

func TestCachedResolver(t *testing.T) {
	counter := &countingResolver{next: sampleLemmatizer(t)}
	c, err := NewCachedResolver(counter, 2)
	if err != nil {
		t.Fatal(err)
	}

	for range 3 {
		got, err := c.Resolve("hoping", Verb)
		if err != nil {
			t.Fatal(err)
		}
		if want := []string{"hope", "hop"}; !reflect.DeepEqual(got, want) {
			t.Fatalf("Resolve(hoping) = %q, want %q", got, want)
		}
		got[0] = "mutated"
	}
	if counter.calls != 1 {
		t.Errorf("underlying resolver called %d times, want 1", counter.calls)
	}

	// Same form, different part of speech, is a different entry.
	if got, _ := c.Resolve("run", Noun); !reflect.DeepEqual(got, []string{"run"}) {
		t.Errorf("Resolve(run, Noun) = %q", got)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}

	c.Resolve("cats", Noun)
	if c.Len() != 2 {
		t.Errorf("Len() after eviction = %d, want 2", c.Len())
	}

	c.Purge()
	if c.Len() != 0 {
		t.Errorf("Len() after Purge = %d", c.Len())
	}
}

func TestCachedResolverErrorsNotCached(t *testing.T) {
	c, err := NewCachedResolver(sampleLemmatizer(t), 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Resolve("cats", PartOfSpeech(6)); !errors.Is(err, ErrInvalidPartOfSpeech) {
		t.Errorf("err = %v, want ErrInvalidPartOfSpeech", err)
	}
	if c.Len() != 0 {
		t.Errorf("error result was cached")
	}
}

func TestCachedResolverConcurrent(t *testing.T) {
	c, err := NewCachedResolver(sampleLemmatizer(t), 16)
	if err != nil {
		t.Fatal(err)
	}
	forms := []string{"cats", "geese", "glasses", "women", "cities"}
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 100 {
				form := forms[(i+j)%len(forms)]
				if got, err := c.Resolve(form, Noun); err != nil || len(got) == 0 {
					t.Errorf("Resolve(%q) = %q, %v", form, got, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

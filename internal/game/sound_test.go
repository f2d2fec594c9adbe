package game

import "testing"

func TestBlipDrainsAfterDuration(t *testing.T) {
	b := newBlip(clickSampleRate, openClickHz, clickDuration)
	wantSamples := clickSampleRate.N(clickDuration)

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := b.Stream(buf)
		for i := 0; i < n; i++ {
			if l := buf[i][0]; l < -clickVolume || l > clickVolume {
				t.Fatalf("sample %d out of envelope: %g", total+i, l)
			}
			if buf[i][0] != buf[i][1] {
				t.Fatalf("blip should be mono-identical, got %v", buf[i])
			}
		}
		total += n
		if !ok {
			break
		}
	}

	if total != wantSamples {
		t.Fatalf("streamed %d samples, want %d", total, wantSamples)
	}
	if b.Err() != nil {
		t.Fatalf("Err() = %v", b.Err())
	}
}

func TestNilClickerIsNoOp(t *testing.T) {
	var c *Clicker
	c.play(true) // must not panic
}

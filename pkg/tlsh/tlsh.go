package tlsh

import "io"

// HashBytes is the oneshot convenience operation: it is exactly
//
//	g := NewGenerator(opts)
//	g.Update(data)
//	return g.Finalize()
func HashBytes(data []byte, opts GeneratorOptions) (FuzzyHash, error) {
	g := NewGenerator(opts)
	g.Update(data)
	return g.Finalize()
}

// HashReader streams r through a Generator in fixed-size chunks and
// finalizes once r is exhausted. Any read error other than io.EOF is
// returned as-is, without wrapping.
func HashReader(r io.Reader, opts GeneratorOptions) (FuzzyHash, error) {
	g := NewGenerator(opts)
	buf := make([]byte, 32*1024)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			g.Update(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return FuzzyHash{}, err
		}
	}
	return g.Finalize()
}

// Package formatter renders decoded log records as human-readable text.
//
// The output of one record is a main line followed by an optional block
// of details:
//
//	[2012-02-08T22:56:52.856Z]  INFO: myservice/123 on example.com: My message (count=5)
//	    req: {
//	      "method": "GET"
//	    }
//
// Extra fields whose display form is short and single-line are shown
// inline as key=value; longer or multi-line values become indented
// detail blocks below the line.
//
// Color is applied by Paint at the leaves of rendering only, so the
// plain and colored outputs carry exactly the same text.
//
// PrettyFormatter implements Formatter, WriterFormatter and
// BufferFormatter. It uses a pooled bytes.Buffer internally; buffers
// larger than 64 KiB are not returned to the pool to prevent a single
// large record from permanently inflating memory usage.
package formatter

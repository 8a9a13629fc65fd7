// Package fitness scores a candidate task→employee assignment. The score is a
// single scalar in (0, 10000]; higher is better. Evaluation is pure and safe
// for concurrent use, which lets the genetic engine fan it out.
package fitness

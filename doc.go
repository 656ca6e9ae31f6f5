// Package perfstat computes binary-classification performance statistics from
// labelled scores.
//
// Scores follow the e-value convention: lower means a more confident positive
// prediction, so a record is predicted positive when its score is at or below
// the decision threshold.
//
// # Quick Start
//
//	records := []perfstat.Record{
//	    {Label: 1, Score: 0.001},
//	    {Label: 0, Score: 0.5},
//	}
//	cm := perfstat.BuildConfusionMatrix(records, 1e-3)
//	fmt.Printf("MCC: %.4f  Q2: %.4f\n", cm.MCC(), cm.Accuracy())
//
//	curve := perfstat.ROC(records)
//	fmt.Printf("AUC: %.2f\n", curve.AUC)
//
// # Degenerate Inputs
//
// None of the statistics return errors. An empty matrix, or any statistic
// whose denominator is zero, yields 0.0.
//
// # Input Files
//
// Score files are whitespace-delimited, one record per line. By default the
// label is in column 1 and the score in column 2 (0-based), matching the
// `.class` files produced by HMM search pipelines. See package dataset.
package perfstat

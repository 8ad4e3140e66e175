// Package regression fits a straight line to (x, y) observations with
// ordinary least squares.
//
// Fit returns the slope, the intercept and the coefficient of determination
// (R², the square of the Pearson correlation coefficient), each rounded to
// three decimal places.
//
// # Degenerate input
//
//   - Fewer than two points, or x and y of different lengths, are rejected.
//   - A constant x has no least-squares slope and is rejected with ErrConstantX.
//   - A constant y yields slope 0 and R² 0: the correlation is taken as 0 when
//     y has no variance.
package regression

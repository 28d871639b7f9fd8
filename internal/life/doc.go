// Package life runs Conway's Game of Life, and other B/S rules, on an
// unbounded board without a display.
//
// It is the reference consumer of the containers: live cells sit in a
// vector that owns them, inputs wait in a queue, and spare cells, spare
// inputs and world backups are kept on stacks.
//
// A generation is computed as follows:
//  1. sort the live cells and drop duplicates
//  2. for each live cell, count its live neighbours by binary search and
//     collect its dead neighbours as potentials, keeping them sorted
//  3. keep the potentials the birth rule accepts
//  4. keep the live cells the survival rule accepts
//  5. append the newborn cells
package life

/*
Package domain contains the core types of the Bilingua service.

It defines the two parallel books a reader works through, the paragraph pair
exchanged with callers and the errors shared by every adapter. This package is
kept pure and free of I/O, following Hexagonal Architecture principles.

# Key Entities

  - Document: an ordered sequence of paragraphs loaded from one text file.
  - Side: names one of the two books (left or right language).
  - ParagraphPair: the two paragraphs at one index, used for reads and writes.
  - Hooks: optional callbacks fired by the store for logging and metrics.
*/
package domain

/*
Package ports defines the driven ports (interfaces) for the Bilingua store.

These interfaces decouple the paragraph store from the medium that holds the
books and the pointer, so the same store can run over local files, Redis or
memory.

# Key Interfaces

  - Backend: raw persistence of the pointer text and the two books.
  - Locker: optional cross-process lock taken around mutations.
  - ParagraphStore: the operations transports (HTTP, MCP, CLI) call into.
*/
package ports

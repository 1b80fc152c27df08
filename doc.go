/*
Package bilingua is a small stateful service for reading and editing two parallel books
paragraph by paragraph.

It keeps a left-language and a right-language text, each split into paragraphs, and one
shared pointer naming the paragraph pair a reader is working on. Clients read the pair
at the pointer (optionally shifted), edit either side, save it back and move the pointer.

# Concept

The books live in a data directory next to a bi.properties file naming them:

	left_name=alice_en.txt
	right_name=alice_ru.txt

Paragraphs are separated by blank lines. The pointer is persisted in ptr.txt. Saving a
pair rewrites only the books whose paragraph actually changed and then reloads them, so
memory always matches what is on disk.

# Usage

	svc, err := bilingua.New("/home/me/Documents/pi/bilingua")
	if err != nil {
		log.Fatal(err)
	}
	defer svc.Close()

	pair := svc.Pair(0)
	pair.Left = strings.ToUpper(pair.Left)
	if err := svc.Save(ctx, pair); err != nil {
		log.Fatal(err)
	}
	_ = svc.SetPointer(ctx, svc.Pointer()+1)

The same service is exposed over HTTP (serve) and the Model Context Protocol (mcp)
by the bilingua command.
*/
package bilingua

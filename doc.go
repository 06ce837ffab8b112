/*
Package bidtree holds auction bids in an ordered index keyed by bid Id, and loads them from
delimited monthly sales exports.

The default index is an unbalanced binary search tree (package bst), which also supports pre-
and post-order walks. B-tree backed indexes are available for comparison.

	idx := bidtree.NewBstIndex()
	stats, err := bidtree.LoadBidsFile("eBid_Monthly_Sales_Dec_2016.csv", idx, nil)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("loaded %d bids", stats.Inserted)
	if b := idx.Search("98104"); b.Ok {
		fmt.Println(b.Value)
	}
*/
package bidtree

package main

import (
	"log"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/segmentio/parquet-go"
)

type Person struct {
	ID     int64   `parquet:"id"`
	Name   string  `parquet:"name"`
	Age    int32   `parquet:"age"`
	Height float32 `parquet:"height"`
	Score  float64 `parquet:"score"`
}

const peopleCSV = `id,name,age,height,score
1,alice,30,1.68,95.5
2,bob,25,1.82,82.3
3,charlie,35,1.75,88.7
4,diana,28,1.6,91.2
5,eve,42,1.7,76.8
`

func main() {
	people := []Person{
		{ID: 1, Name: "alice", Age: 30, Height: 1.68, Score: 95.5},
		{ID: 2, Name: "bob", Age: 25, Height: 1.82, Score: 82.3},
		{ID: 3, Name: "charlie", Age: 35, Height: 1.75, Score: 88.7},
		{ID: 4, Name: "diana", Age: 28, Height: 1.6, Score: 91.2},
		{ID: 5, Name: "eve", Age: 42, Height: 1.7, Score: 76.8},
	}

	if err := os.WriteFile("people.csv", []byte(peopleCSV), 0o644); err != nil {
		log.Fatal(err)
	}

	gz, err := os.Create("people.csv.gz")
	if err != nil {
		log.Fatal(err)
	}
	zw := gzip.NewWriter(gz)
	if _, err := zw.Write([]byte(peopleCSV)); err != nil {
		log.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		log.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		log.Fatal(err)
	}

	file, err := os.Create("people.parquet")
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[Person](file)
	defer writer.Close()

	if _, err := writer.Write(people); err != nil {
		log.Fatal(err)
	}

	log.Println("Generated people.csv, people.csv.gz and people.parquet with 5 people")
}
